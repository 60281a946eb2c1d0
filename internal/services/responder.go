// responder.go
//
// Keyword-driven canned assistant replies for the legal chat endpoint.

package services

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// cannedReplies are the assistant's stock answers. Index order matters: the
// keyword rules below select by position.
var cannedReplies = []string{
	"Based on your question about contract law, here's what you need to know: Contracts require offer, acceptance, and consideration to be legally binding. Would you like me to explain any of these elements in detail?",
	"For employment law matters, it's important to understand your rights. Most employment relationships are 'at-will' unless specified otherwise. I recommend documenting any workplace issues. Would you like specific guidance on your situation?",
	"Regarding property law, tenant rights vary by state but generally include the right to habitable conditions and privacy. Landlords must provide proper notice before entry. What specific property issue are you facing?",
	"For business formation, LLCs offer liability protection and tax flexibility. Consider factors like ownership structure, state of incorporation, and operating agreements. Would you like me to explain the different business entity types?",
	"Family law matters can be complex and emotionally challenging. Each state has different requirements for divorce, custody, and support. I recommend consulting with a local family law attorney for your specific situation.",
}

// keywordRules map message keywords to a canned reply. Evaluated in order,
// first match wins.
var keywordRules = []struct {
	keywords []string
	reply    int
}{
	{[]string{"contract"}, 0},
	{[]string{"employment", "work", "job"}, 1},
	{[]string{"tenant", "rent", "property"}, 2},
	{[]string{"business", "llc", "company"}, 3},
	{[]string{"family", "divorce", "custody"}, 4},
}

// Responder produces assistant replies with a simulated processing delay.
type Responder struct {
	delayBase   time.Duration
	delayJitter time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponder creates a Responder. Each reply sleeps delayBase plus a
// random fraction of delayJitter before returning.
func NewResponder(delayBase, delayJitter time.Duration) *Responder {
	return &Responder{
		delayBase:   delayBase,
		delayJitter: delayJitter,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Reply selects a reply for message. Matching is case-insensitive substring
// containment; a message matching no rule gets a random canned reply. Reply
// returns early with ctx.Err() if the context is cancelled mid-delay.
func (r *Responder) Reply(ctx context.Context, message string) (string, error) {
	if err := r.sleep(ctx); err != nil {
		return "", err
	}

	lower := strings.ToLower(message)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return cannedReplies[rule.reply], nil
			}
		}
	}

	r.mu.Lock()
	i := r.rng.Intn(len(cannedReplies))
	r.mu.Unlock()
	return cannedReplies[i], nil
}

func (r *Responder) sleep(ctx context.Context) error {
	d := r.delayBase
	if r.delayJitter > 0 {
		r.mu.Lock()
		d += time.Duration(r.rng.Int63n(int64(r.delayJitter)))
		r.mu.Unlock()
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
