// Package services runs the progression rules against the store: every mutating
// operation is one transaction that either applies all of its counter changes or none.
package services

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind is the machine-readable reason of a PreconditionError.
type ErrorKind string

const (
	KindDuplicateVote        ErrorKind = "duplicate_vote"
	KindInvalidVoteKind      ErrorKind = "invalid_vote_kind"
	KindUserNotFound         ErrorKind = "user_not_found"
	KindPostNotFound         ErrorKind = "post_not_found"
	KindQuestNotFound        ErrorKind = "quest_not_found"
	KindAlreadyClaimed       ErrorKind = "already_claimed"
	KindNotYetComplete       ErrorKind = "not_yet_complete"
	KindItemNotFound         ErrorKind = "item_not_found"
	KindAlreadyOwned         ErrorKind = "already_owned"
	KindInsufficientDiamonds ErrorKind = "insufficient_diamonds"
	KindUploadCooldown       ErrorKind = "upload_cooldown"
	KindSelfVote             ErrorKind = "self_vote"
)

// PreconditionError is a rejected action. It never leaves partial writes behind.
type PreconditionError struct {
	Kind    ErrorKind
	Message string
	// RetryAfter is set for KindUploadCooldown.
	RetryAfter time.Duration
}

func (e *PreconditionError) Error() string {
	return e.Message
}

// Is matches any PreconditionError of the same kind, so the sentinels below work with
// errors.Is regardless of message.
func (e *PreconditionError) Is(target error) bool {
	t, ok := target.(*PreconditionError)
	return ok && t.Kind == e.Kind
}

var (
	ErrDuplicateVote        = &PreconditionError{Kind: KindDuplicateVote, Message: "you have already voted on this post"}
	ErrInvalidVoteKind      = &PreconditionError{Kind: KindInvalidVoteKind, Message: "vote must be upvote or downvote"}
	ErrUserNotFound         = &PreconditionError{Kind: KindUserNotFound, Message: "stats not found"}
	ErrPostNotFound         = &PreconditionError{Kind: KindPostNotFound, Message: "post not found"}
	ErrQuestNotFound        = &PreconditionError{Kind: KindQuestNotFound, Message: "quest not found"}
	ErrAlreadyClaimed       = &PreconditionError{Kind: KindAlreadyClaimed, Message: "quest reward already claimed"}
	ErrNotYetComplete       = &PreconditionError{Kind: KindNotYetComplete, Message: "quest is not complete yet"}
	ErrItemNotFound         = &PreconditionError{Kind: KindItemNotFound, Message: "item not found"}
	ErrAlreadyOwned         = &PreconditionError{Kind: KindAlreadyOwned, Message: "you already own this item"}
	ErrInsufficientDiamonds = &PreconditionError{Kind: KindInsufficientDiamonds, Message: "not enough diamonds"}
	ErrUploadCooldown       = &PreconditionError{Kind: KindUploadCooldown, Message: "upload is on cooldown"}
	ErrSelfVote             = &PreconditionError{Kind: KindSelfVote, Message: "you cannot vote on your own post"}
)

func uploadCooldownError(remaining time.Duration) *PreconditionError {
	return &PreconditionError{
		Kind:       KindUploadCooldown,
		Message:    fmt.Sprintf("you can upload again in %s", remaining.Round(time.Minute)),
		RetryAfter: remaining,
	}
}

// IsKind reports whether err carries a PreconditionError of kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *PreconditionError
	return errors.As(err, &pe) && pe.Kind == kind
}

// AsPrecondition returns the PreconditionError wrapped in err, if any.
func AsPrecondition(err error) (*PreconditionError, bool) {
	var pe *PreconditionError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
