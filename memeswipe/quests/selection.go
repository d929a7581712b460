// Package quests holds the pure parts of the weekly quest cycle: picking a user's set
// from the catalog and working out when the current week ends.
package quests

import (
	"errors"
	"math/rand/v2"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
)

// WeeklySetSize is the number of assignments in an active weekly set.
const WeeklySetSize = 4

// ErrCatalogTooSmall is returned when the catalog cannot fill a weekly set.
var ErrCatalogTooSmall = errors.New("quest catalog holds fewer templates than a weekly set needs")

// Rand is the subset of *rand.Rand the selection needs.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultRand draws from the process-wide generator.
var DefaultRand Rand = globalRand{}

// SelectWeekly picks WeeklySetSize templates from catalog. Kinds are visited in random
// order and contribute one random template each, so a set covers as many kinds as the
// catalog allows; remaining slots are filled uniformly from the templates left over.
func SelectWeekly(catalog []*models.QuestTemplate, rng Rand) ([]*models.QuestTemplate, error) {
	if len(catalog) < WeeklySetSize {
		return nil, ErrCatalogTooSmall
	}
	if rng == nil {
		rng = DefaultRand
	}

	pools := make(map[models.ActionKind][]*models.QuestTemplate)
	var kinds []models.ActionKind
	for _, t := range catalog {
		if _, ok := pools[t.ActionKind]; !ok {
			kinds = append(kinds, t.ActionKind)
		}
		pools[t.ActionKind] = append(pools[t.ActionKind], t)
	}

	rng.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })

	selected := make([]*models.QuestTemplate, 0, WeeklySetSize)
	chosen := make(map[int64]struct{}, WeeklySetSize)

	for _, kind := range kinds {
		if len(selected) == WeeklySetSize {
			break
		}
		pool := pools[kind]
		pick := pool[rng.IntN(len(pool))]
		selected = append(selected, pick)
		chosen[pick.ID] = struct{}{}
	}

	if len(selected) < WeeklySetSize {
		remaining := make([]*models.QuestTemplate, 0, len(catalog))
		for _, t := range catalog {
			if _, ok := chosen[t.ID]; !ok {
				remaining = append(remaining, t)
			}
		}
		for len(selected) < WeeklySetSize {
			i := rng.IntN(len(remaining))
			selected = append(selected, remaining[i])
			remaining[i] = remaining[len(remaining)-1]
			remaining = remaining[:len(remaining)-1]
		}
	}

	return selected, nil
}
