package domain

import "time"

// Result is one finished assessment attempt. The strengths, improvements
// and course suggestion payloads are stored as JSON text columns and
// decoded on read.
type Result struct {
	ID                string
	AccountID         string
	Name              string
	Subject           string
	Level             string
	Percent           float64
	StartTime         string
	EndTime           string
	Strengths         []string
	Improvements      []string
	CourseSuggestions []CourseSuggestion
	CreatedAt         time.Time
}

// CourseSuggestion is one recommended course derived from an attempt.
type CourseSuggestion struct {
	Title    string `json:"title"`
	Provider string `json:"provider,omitempty"`
	Link     string `json:"link,omitempty"`
	Level    string `json:"level,omitempty"`
}

// Question is one answered question belonging to a result. Question rows
// are written in the same transaction as their result and never mutated.
type Question struct {
	ID             string
	ResultID       string
	Question       string
	Option1        string
	Option2        string
	Option3        string
	Option4        string
	CorrectOption  string
	SelectedOption string
}
