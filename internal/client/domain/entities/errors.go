package entities

import "errors"

// ErrEmptyTitle возвращается, когда заголовок задан пустой строкой.
var ErrEmptyTitle = errors.New("title must not be empty")
