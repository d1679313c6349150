package ticket

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// CanTransitionTo enforces the ticket lifecycle: open tickets can move
// anywhere forward, in-progress tickets can be resolved or closed, resolved
// tickets can only be closed.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusOpen:
		return next == StatusInProgress || next == StatusResolved || next == StatusClosed
	case StatusInProgress:
		return next == StatusResolved || next == StatusClosed
	case StatusResolved:
		return next == StatusClosed
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type SupportTicket struct {
	id            uint
	userID        uint
	subject       string
	message       string
	status        Status
	priority      Priority
	adminResponse *string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewSupportTicket(userID uint, subject, message string, priority Priority) (*SupportTicket, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 500 {
		return nil, fmt.Errorf("subject exceeds maximum length of 500 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := time.Now()

	return &SupportTicket{
		userID:    userID,
		subject:   subject,
		message:   message,
		status:    StatusOpen,
		priority:  priority,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSupportTicket(
	id uint,
	userID uint,
	subject string,
	message string,
	status Status,
	priority Priority,
	adminResponse *string,
	createdAt, updatedAt time.Time,
) (*SupportTicket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &SupportTicket{
		id:            id,
		userID:        userID,
		subject:       subject,
		message:       message,
		status:        status,
		priority:      priority,
		adminResponse: adminResponse,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (t *SupportTicket) ID() uint { return t.id }

func (t *SupportTicket) UserID() uint { return t.userID }

func (t *SupportTicket) Subject() string { return t.subject }

func (t *SupportTicket) Message() string { return t.message }

func (t *SupportTicket) Status() Status { return t.status }

func (t *SupportTicket) Priority() Priority { return t.priority }

func (t *SupportTicket) AdminResponse() *string { return t.adminResponse }

func (t *SupportTicket) CreatedAt() time.Time { return t.createdAt }

func (t *SupportTicket) UpdatedAt() time.Time { return t.updatedAt }

func (t *SupportTicket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// GetOwnerID satisfies the ownership check used by handlers.
func (t *SupportTicket) GetOwnerID() uint {
	return t.userID
}

// ChangeStatus moves the ticket through its lifecycle.
func (t *SupportTicket) ChangeStatus(next Status) error {
	if !next.IsValid() {
		return fmt.Errorf("invalid status: %s", next)
	}
	if t.status == next {
		return nil
	}
	if !t.status.CanTransitionTo(next) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, next)
	}

	t.status = next
	t.updatedAt = time.Now()
	return nil
}

// Respond records an admin reply. Responding to an open ticket moves it to
// in progress.
func (t *SupportTicket) Respond(response string) error {
	if len(response) == 0 {
		return fmt.Errorf("response is required")
	}
	if t.status.IsClosed() {
		return fmt.Errorf("cannot respond to a closed ticket")
	}

	t.adminResponse = &response
	if t.status == StatusOpen {
		t.status = StatusInProgress
	}
	t.updatedAt = time.Now()
	return nil
}

// ChangePriority updates the triage priority.
func (t *SupportTicket) ChangePriority(p Priority) error {
	if !p.IsValid() {
		return fmt.Errorf("invalid priority: %s", p)
	}
	t.priority = p
	t.updatedAt = time.Now()
	return nil
}
