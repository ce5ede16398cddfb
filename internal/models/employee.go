package models

// EmployeeInput holds every employee attribute the client controls.
type EmployeeInput struct {
	Name          string `json:"name"`
	Position      string `json:"position"`
	Department    string `json:"department"`
	StoreLocation string `json:"store_location"` //nolint:tagliatelle // wire name is part of the public API
}

// Employee represents a persisted employee row.
type Employee struct {
	ID int `json:"id"`
	EmployeeInput
}

// NewEmployee assembles an Employee from a storage-assigned id and the client input.
func NewEmployee(id int, input EmployeeInput) Employee {
	return Employee{ID: id, EmployeeInput: input}
}

// Acknowledgment is the fixed response body returned by mutating endpoints.
type Acknowledgment struct {
	Message string `json:"message"`
}
