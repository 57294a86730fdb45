// Package entity defines the response shapes of the admin API.
package entity

// Msg is the body of every mutating admin API response. Success is set on
// success and Error otherwise, so a client sees either {"success":true} or
// {"error":"..."}.
type Msg struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Ok() Msg {
	return Msg{Success: true}
}

func Fail(msg string) Msg {
	return Msg{Error: msg}
}
