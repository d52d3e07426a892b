package domain

import "time"

// Task is an entry on the task/goal screen. It carries the reminder time
// chosen when it was submitted and has no completion state
type Task struct {
	ID   ID        `json:"id"`
	Name string    `json:"name"`
	Time time.Time `json:"time"`
}

// Goal is an entry that moves one way from active to completed
type Goal struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Item is an entry on the simple task screen. Completion can be toggled
// back and forth
type Item struct {
	ID        ID     `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// FindGoal returns the index of the goal with id, or -1
func FindGoal(goals []Goal, id ID) int {
	for i := range goals {
		if goals[i].ID == id {
			return i
		}
	}
	return -1
}

// FindItem returns the index of the item with id, or -1
func FindItem(items []Item, id ID) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// Done reports whether the goal is completed
func (g Goal) Done() bool { return g.Completed }

// Done reports whether the item is checked off
func (i Item) Done() bool { return i.Completed }

// CountCompleted returns the number of done entries
func CountCompleted[E interface{ Done() bool }](entries []E) int {
	n := 0
	for _, e := range entries {
		if e.Done() {
			n++
		}
	}
	return n
}
