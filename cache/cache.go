// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package cache holds poll listings between writes.
package cache

import (
	"context"

	"github.com/danielhkuo/pollboard/models"
)

// ListingCache stores poll listings by key. A miss is (nil, false, nil).
type ListingCache interface {
	Get(ctx context.Context, key string) ([]models.Poll, bool, error)
	Set(ctx context.Context, key string, polls []models.Poll) error
	Delete(ctx context.Context, keys ...string) error
}

// AllPollsKey is the admin listing across owners
const AllPollsKey = "polls:all"

// UserPollsKey is the listing of one owner's polls
func UserPollsKey(userID string) string {
	return "polls:user:" + userID
}
