package queue

import "errors"

var (
	ErrClosed        = errors.New("queue: closed")
	ErrFlushOnQueue  = errors.New("queue: flush called from the queue's own goroutine")
	ErrInvalidOption = errors.New("queue: invalid option")
)
