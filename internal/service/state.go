package service

import "github.com/kdduha/jaguar-studio/internal/models"

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// State is the outcome of the latest generation cycle. Result is set only for
// StatusSuccess and Error only for StatusFailure.
type State struct {
	Status Status                   `json:"status" example:"success"`
	Result *models.GenerationResult `json:"result,omitempty"`
	Error  string                   `json:"error,omitempty" example:"model busy"`
}

func IdleState() State    { return State{Status: StatusIdle} }
func LoadingState() State { return State{Status: StatusLoading} }

func SuccessState(result models.GenerationResult) State {
	return State{Status: StatusSuccess, Result: &result}
}

func FailureState(message string) State {
	return State{Status: StatusFailure, Error: message}
}

func (s State) Loading() bool {
	return s.Status == StatusLoading
}

// ImageURL is the displayable reference of a successful result, empty otherwise.
func (s State) ImageURL() string {
	if s.Status != StatusSuccess || s.Result == nil {
		return ""
	}
	return s.Result.DataURI()
}
