package errors

import "errors"

var (
	ErrProviderUnavailable  = errors.New("timings provider unavailable")
	ErrRecipientBlocked     = errors.New("recipient blocked the bot")
	ErrRecipientDeactivated = errors.New("recipient account deactivated")
	ErrSenderNotReady       = errors.New("message sender is not wired yet")
)
