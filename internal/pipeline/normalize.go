package pipeline

import (
	"strings"

	"zipcode-jp/internal/models"
)

// KEN_ALL.CSV splits town names longer than the publisher's line limit across
// consecutive rows under the same zip code, e.g. for 〒0210102:
//
//	萩荘（赤猪子、芦ノ口、甘蕨、老流、大沢、上宇津野、上本郷、上要害、化粧
//	坂、三月田、下宇津野、下本郷、外山、堂の沢、栃倉、栃倉南、長倉、中沢、
//	八森、馬場、広面、平場、古釜場、曲淵、松原、南沢、谷起、焼切、八瀬、
//	八幡、山ノ沢）
//
// Normalize joins such fragments and writes the joined value to every row of the group.

type scanState int

const (
	stateIdle scanState = iota
	stateAccumulating
)

// fragmentGroup is a town name split across two or more rows.
type fragmentGroup struct {
	zipCode string
	openRow int
	towns   []string
	kanas   []string
}

func (g *fragmentGroup) town() string {
	return strings.Join(g.towns, "")
}

func (g *fragmentGroup) townKana() string {
	return strings.Join(g.kanas, "")
}

func (g *fragmentGroup) contains(town string) bool {
	for _, t := range g.towns {
		if t == town {
			return true
		}
	}
	return false
}

// fragmentScanner finds fragment groups in a single left-to-right pass.
// It holds at most one open group at a time.
type fragmentScanner struct {
	state   scanState
	current *fragmentGroup
	groups  []*fragmentGroup
}

func opensFragment(town string) bool {
	return strings.Contains(town, models.OpenBracket) && !strings.Contains(town, models.CloseBracket)
}

func closesFragment(town string) bool {
	return strings.Contains(town, models.CloseBracket)
}

// feed advances the scanner by one record. row is the 1-based input position.
func (s *fragmentScanner) feed(row int, r models.Record) error {
	zipCode, town, kana := r.ZipCodeValue(), r.Get(models.FieldTown), r.Get(models.FieldTownKana)

	switch s.state {
	case stateIdle:
		if !opensFragment(town) {
			return nil
		}
		s.current = &fragmentGroup{
			zipCode: zipCode,
			openRow: row,
			towns:   []string{town},
			kanas:   []string{kana},
		}
		s.state = stateAccumulating
		return nil

	case stateAccumulating:
		if zipCode != s.current.zipCode {
			return &FragmentMismatchError{Row: row, OpenRow: s.current.openRow, Open: s.current.zipCode, Got: zipCode}
		}
		s.current.towns = append(s.current.towns, town)
		s.current.kanas = append(s.current.kanas, kana)
		if closesFragment(town) {
			s.close()
		}
	}
	return nil
}

func (s *fragmentScanner) close() {
	if len(s.current.towns) > 1 {
		s.groups = append(s.groups, s.current)
	}
	s.current = nil
	s.state = stateIdle
}

// finish returns the closed groups indexed by zip code.
// A group still open at the end of input is dropped and its rows pass through.
func (s *fragmentScanner) finish() map[string][]*fragmentGroup {
	s.current = nil
	s.state = stateIdle

	byZipCode := make(map[string][]*fragmentGroup, len(s.groups))
	for _, g := range s.groups {
		byZipCode[g.zipCode] = append(byZipCode[g.zipCode], g)
	}
	return byZipCode
}

// Normalize repairs town names split across rows. The result has the same
// length and order as records; records itself is not modified.
func Normalize(records []models.Record) ([]models.Record, error) {
	var scanner fragmentScanner
	for i, r := range records {
		if err := scanner.feed(i+1, r); err != nil {
			return nil, err
		}
	}
	groups := scanner.finish()

	normalized := make([]models.Record, len(records))
	for i, r := range records {
		normalized[i] = r
		for _, g := range groups[r.ZipCodeValue()] {
			if g.contains(r.Get(models.FieldTown)) {
				normalized[i] = r.
					With(models.FieldTown, g.town()).
					With(models.FieldTownKana, g.townKana())
				break
			}
		}
	}
	return normalized, nil
}
