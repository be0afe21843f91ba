package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEntityNotFound   = errors.New("entity not found")
	ErrPostNotFound     = fmt.Errorf("post: %w", ErrEntityNotFound)
	ErrDebateNotFound   = fmt.Errorf("debate: %w", ErrEntityNotFound)
	ErrPollNotFound     = fmt.Errorf("poll: %w", ErrEntityNotFound)
	ErrPetitionNotFound = fmt.Errorf("petition: %w", ErrEntityNotFound)
	ErrUserNotFound     = fmt.Errorf("user: %w", ErrEntityNotFound)
	ErrVoteNotFound     = fmt.Errorf("vote: %w", ErrEntityNotFound)

	ErrLeaderNotFound     = fmt.Errorf("leader: %w", ErrEntityNotFound)
	ErrDepartmentNotFound = fmt.Errorf("department: %w", ErrEntityNotFound)
	ErrProjectNotFound    = fmt.Errorf("project: %w", ErrEntityNotFound)

	ErrAlreadyVoted      = errors.New("user has already voted")
	ErrAlreadySigned     = errors.New("user has already signed")
	ErrAlreadyReacted    = errors.New("user has already reacted")
	ErrInvalidOption     = errors.New("invalid option for this poll")
	ErrSingleChoice      = errors.New("poll accepts a single option")
	ErrPollClosed        = errors.New("poll is closed")
	ErrPetitionNotActive = errors.New("petition is not active")
	ErrPetitionExpired   = errors.New("petition deadline has passed")
	ErrDebateArchived    = errors.New("debate is archived")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidReaction   = errors.New("invalid reaction")
)

// InvalidOptionError names the option ids of a ballot that the poll does not offer.
type InvalidOptionError struct {
	IDs []string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidOption, strings.Join(e.IDs, ", "))
}

func (e *InvalidOptionError) Is(target error) bool {
	return target == ErrInvalidOption
}

func InvalidOption(ids []string) error {
	return &InvalidOptionError{IDs: ids}
}

// Invalid wraps ErrInvalidInput with the offending field.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
