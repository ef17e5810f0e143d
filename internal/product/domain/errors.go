package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when no product matches.
	ErrNotFound = errors.New("produto não encontrado")
	// ErrInsufficientStock is returned when a decrement would drive the
	// stock below zero. The conditional UPDATE guarantees it never does.
	ErrInsufficientStock = errors.New("estoque insuficiente")
)
