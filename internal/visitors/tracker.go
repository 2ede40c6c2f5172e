package visitors

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Recorder stores a visit.
type Recorder interface {
	Record(ctx context.Context, v Visit) error
}

// Hasher turns client addresses into stable salted digests.
type Hasher struct {
	salt string
}

// NewHasher returns a Hasher. An empty salt is replaced with a random one,
// so digests are only comparable within one process.
func NewHasher(salt string) *Hasher {
	if salt == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			log.Printf("visitors: random salt: %v", err)
		}
		salt = hex.EncodeToString(b)
	}
	return &Hasher{salt: salt}
}

// Hash returns the truncated salted digest of ip.
func (h *Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

var untrackedPrefixes = []string{"/static/", "/healthz", "/favicon"}

// Tracker records page views from HTTP requests.
type Tracker struct {
	rec    Recorder
	hasher *Hasher
	now    func() time.Time

	wg sync.WaitGroup
}

// NewTracker returns a Tracker writing to rec.
func NewTracker(rec Recorder, hasher *Hasher) *Tracker {
	if hasher == nil {
		hasher = NewHasher("")
	}
	return &Tracker{rec: rec, hasher: hasher, now: time.Now}
}

// Middleware records full page loads in the background. Static assets,
// health checks, HTMX fragment requests and Do Not Track requests are
// skipped.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if t.shouldTrack(c) {
			v := Visit{
				HashedIP:  t.hasher.Hash(c.ClientIP()),
				UserAgent: c.GetHeader("User-Agent"),
				Path:      c.Request.URL.Path,
				VisitedAt: t.now(),
			}
			t.wg.Add(1)
			go func() {
				defer t.wg.Done()
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := t.rec.Record(ctx, v); err != nil {
					log.Printf("Error recording visitor: %v", err)
				}
			}()
		}
		c.Next()
	}
}

func (t *Tracker) shouldTrack(c *gin.Context) bool {
	if c.Request.Method != "GET" {
		return false
	}
	path := c.Request.URL.Path
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	if c.GetHeader("HX-Request") == "true" {
		return false
	}
	return c.GetHeader("DNT") != "1"
}

// Wait blocks until background writes have finished.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

// Cleaner deletes visits.
type Cleaner interface {
	Cleanup(ctx context.Context, cutoff time.Time) (int64, error)
}

// RunRetention deletes visits older than retention once at start and then
// every interval until ctx is done.
func RunRetention(ctx context.Context, c Cleaner, retention, interval time.Duration) error {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	sweep := func() {
		n, err := c.Cleanup(ctx, time.Now().Add(-retention))
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("Error cleaning up old visitor data: %v", err)
			}
			return
		}
		if n > 0 {
			log.Printf("Privacy cleanup: removed %d visitor records older than %s", n, retention)
		}
	}

	sweep()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			sweep()
		}
	}
}
