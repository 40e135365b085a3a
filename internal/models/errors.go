package models

import "errors"

var (
	ErrNoRecord        = errors.New("models: no matching record found")
	ErrDuplicateEmail  = errors.New("models: email already in use")
	ErrDuplicateReview = errors.New("models: review already submitted for this product")
)
