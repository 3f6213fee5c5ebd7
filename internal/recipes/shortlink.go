package recipes

import (
	"context"
	"errors"
	"math/rand/v2"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"foodgram-api/ent"
	"foodgram-api/ent/recipe"
	"foodgram-api/internal/logx"
)

const (
	codeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// CodeLength is the fixed length of a short-link code.
	CodeLength = 8
	// maxCodeAttempts bounds collision retries during code assignment.
	maxCodeAttempts = 5

	resolveCacheSize = 4096
)

var shortLinkLogger = logx.GetScope("shortlink")

// ErrCodeSpaceExhausted means maxCodeAttempts fresh codes all collided.
// With 62^8 codes this never happens in practice; it is surfaced as a fatal
// store condition rather than retried forever.
var ErrCodeSpaceExhausted = errors.New("short link code space exhausted")

// ShortLinks assigns and resolves the immutable 8-character recipe codes.
type ShortLinks struct {
	client *ent.Client
	cache  *lru.Cache // code -> recipe id
}

// NewShortLinks returns a resolver with an in-process LRU in front of the
// short_link lookup.
func NewShortLinks(client *ent.Client) *ShortLinks {
	cache, _ := lru.New(resolveCacheSize)
	return &ShortLinks{client: client, cache: cache}
}

// NewCode generates a fresh code that no existing recipe carries. On
// collision it regenerates up to maxCodeAttempts times.
func (l *ShortLinks) NewCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := randomCode()
		exists, err := l.client.Recipe.Query().
			Where(recipe.ShortLink(code)).
			Exist(ctx)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		shortLinkLogger.Warn("short link collision, regenerating",
			zap.String("code", code), zap.Int("attempt", i+1))
	}
	shortLinkLogger.Error("short link generation exhausted retry budget",
		zap.Int("attempts", maxCodeAttempts))
	return "", ErrCodeSpaceExhausted
}

// Resolve returns the id of the recipe carrying the code, or ErrNotFound.
func (l *ShortLinks) Resolve(ctx context.Context, code string) (int, error) {
	if v, ok := l.cache.Get(code); ok {
		return v.(int), nil
	}
	rec, err := l.client.Recipe.Query().
		Where(recipe.ShortLink(code)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	l.cache.Add(code, rec.ID)
	return rec.ID, nil
}

// Forget evicts a code from the resolver cache. Called when the recipe
// carrying it is deleted, so a warmed code stops resolving.
func (l *ShortLinks) Forget(code string) {
	l.cache.Remove(code)
}

func randomCode() string {
	b := make([]byte, CodeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(b)
}
