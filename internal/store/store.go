// Package store owns the community hub state: a pure reducer over the post
// list plus persistence of that list to the app's key-value storage.
package store

import (
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"

	"farmguard/internal/db"
	"farmguard/internal/models"
)

// KV is the durable storage the post list round-trips through.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Store loads and saves the post list. Reads fall back to the seed posts when
// storage is empty or holds something unreadable. Saves are sequenced so that
// snapshots written from worker goroutines land in dispatch order.
type Store struct {
	kv   KV
	seed []models.CommunityPost

	seq   atomic.Uint64
	mu    sync.Mutex
	saved uint64
}

func New(kv KV, seed []models.CommunityPost) *Store {
	return &Store{kv: kv, seed: seed}
}

// Load returns the persisted post list, or the seed posts when nothing usable
// is stored. Either way the result is normalized: comments non-nil, transient
// view state reset.
func (s *Store) Load() []models.CommunityPost {
	raw, ok := s.kv.Get(db.KeyPosts)
	if !ok {
		return normalize(s.seed)
	}
	var posts []models.CommunityPost
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		log.Printf("store: discarding unreadable post list: %v", err)
		return normalize(s.seed)
	}
	return normalize(posts)
}

// Begin reserves the next save slot. Callers that hand a snapshot to a
// goroutine take a slot first, on the event loop, so slot order matches the
// order the state changed in.
func (s *Store) Begin() uint64 {
	return s.seq.Add(1)
}

// SaveOrdered writes the snapshot taken at slot seq. A snapshot that finishes
// after a later one has already been written is stale and is dropped.
func (s *Store) SaveOrdered(seq uint64, posts []models.CommunityPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.saved {
		return
	}
	s.saved = seq
	s.write(posts)
}

// Save writes the post list to storage, taking the next save slot itself.
func (s *Store) Save(posts []models.CommunityPost) {
	s.SaveOrdered(s.Begin(), posts)
}

// write serializes and stores one snapshot. Transient view state is stripped
// from the copy that gets serialized; the caller's slice is untouched.
// Storage failures are logged and swallowed so the in-memory state stays
// authoritative for the session.
func (s *Store) write(posts []models.CommunityPost) {
	data, err := json.Marshal(normalize(posts))
	if err != nil {
		log.Printf("store: cannot serialize post list: %v", err)
		return
	}
	if err := s.kv.Set(db.KeyPosts, string(data)); err != nil {
		log.Printf("store: cannot persist post list: %v", err)
	}
}

func normalize(posts []models.CommunityPost) []models.CommunityPost {
	next := make([]models.CommunityPost, len(posts))
	copy(next, posts)
	for i := range next {
		if next[i].Comments == nil {
			next[i].Comments = []models.Comment{}
		}
		next[i].ShowComments = false
		next[i].CommentDraft = ""
	}
	return next
}
