package generator

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/crosswordgen/internal/dependencies/mocks"
	"github.com/mcoot/crosswordgen/internal/model"
	"github.com/mcoot/crosswordgen/internal/services/navigator"
	"github.com/mcoot/crosswordgen/internal/services/placement"
	"github.com/mcoot/crosswordgen/internal/services/wordbank"
	"github.com/mcoot/crosswordgen/internal/storage/memory"
	"github.com/mcoot/crosswordgen/internal/testutil"
)

type GeneratorSuite struct {
	suite.Suite
	rnd      *mocks.MockRandom
	clock    *mocks.MockClock
	wordbank *wordbank.Service
	service  *Service
	ctx      context.Context
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorSuite))
}

func (s *GeneratorSuite) SetupTest() {
	s.rnd = mocks.NewMockRandom()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.wordbank = wordbank.New(memory.New(), s.clock, testutil.NopLogger())
	s.service = New(s.wordbank, s.rnd, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *GeneratorSuite) TestGenerateSmallList() {
	s.rnd.QueueString("PUZZLE000001")
	opts := DefaultOptions()
	opts.MaxHeight = 25
	opts.MaxWidth = 60

	p, err := s.service.Generate(s.ctx, []string{"CONTOH", "DUMMY", "LOREM"}, opts)
	s.Require().NoError(err)

	s.Equal("PUZZLE000001", p.ID)
	s.ElementsMatch([]string{"CONTOH", "DUMMY", "LOREM"}, p.WordsUsed)
	s.Empty(p.WordsRejected)
	s.Len(p.Across, 2)
	s.Len(p.Down, 1)
	s.Equal(s.clock.Now(), p.GeneratedAt)

	s.LessOrEqual(len(p.Board), 25)
	s.Len(p.Board, 2*p.Rows+1)
	s.Len(p.Clueless, len(p.Board))
	for _, line := range p.Clueless {
		s.False(strings.ContainsFunc(line, unicode.IsLetter), "clueless line %q", line)
		s.LessOrEqual(len([]rune(line)), 60)
	}
}

func (s *GeneratorSuite) TestCluesPointAtLetters() {
	p, err := s.service.Generate(s.ctx, []string{"CONTOH", "DUMMY", "LOREM"}, DefaultOptions())
	s.Require().NoError(err)

	for _, clue := range append(p.Across, p.Down...) {
		s.Len(clue.Cells, len(clue.Word))
		for i, cell := range clue.Cells {
			line := []rune(p.Board[cell.Row])
			s.Equal(rune(clue.Word[i]), line[cell.Col+1])
		}
	}
}

func (s *GeneratorSuite) TestRenderedBoardIsNavigable() {
	p, err := s.service.Generate(s.ctx, []string{"cat", "to"}, DefaultOptions())
	s.Require().NoError(err)

	nav, err := navigator.New(p.RenderedBoard().Clueless())
	s.Require().NoError(err)
	s.Equal(model.Position{Row: 0, Col: 0}, nav.Position())
}

func (s *GeneratorSuite) TestGenerateLogsSummary() {
	logger, logs := testutil.RecordingLogger()
	service := New(s.wordbank, s.rnd, s.clock, logger)
	s.rnd.QueueString("PUZZLE000002")

	_, err := service.Generate(s.ctx, []string{"cat", "to", "bug"}, DefaultOptions())
	s.Require().NoError(err)

	records := logs.Records("puzzle generated")
	s.Require().Len(records, 1)
	s.Equal("PUZZLE000002", records[0]["puzzle_id"])
	s.EqualValues(2, records[0]["used"])
	s.EqualValues(1, records[0]["rejected"])

	s.NotEmpty(logs.Records("placement pass complete"))
	s.Len(logs.Records("grid seeded"), 1)
}

func (s *GeneratorSuite) TestGenerateInvalidInput() {
	_, err := s.service.Generate(s.ctx, []string{"a", "1", ""}, DefaultOptions())
	s.ErrorIs(err, model.ErrInvalidInput)
}

func (s *GeneratorSuite) TestGenerateCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.service.Generate(ctx, []string{"cat", "to"}, DefaultOptions())
	s.ErrorIs(err, context.Canceled)
}

func (s *GeneratorSuite) TestGenerateWithRefresh() {
	opts := DefaultOptions()
	opts.Refresh = true

	p, err := s.service.Generate(s.ctx, []string{"cat", "to", "xyz"}, opts)
	s.Require().NoError(err)

	s.Equal([]string{"CAT", "TO"}, p.WordsUsed)
	s.Equal([]string{"XYZ"}, p.WordsRejected)
}

func (s *GeneratorSuite) TestGenerateAppliesBoundsPolicy() {
	opts := DefaultOptions()
	opts.MaxHeight = 5
	opts.BoundsPolicy = placement.BoundsAbortPass

	p, err := s.service.Generate(s.ctx, []string{"horse", "ore", "he"}, opts)
	s.Require().NoError(err)

	s.Equal([]string{"HORSE"}, p.WordsUsed)
	s.Equal([]string{"ORE", "HE"}, p.WordsRejected)
}

func (s *GeneratorSuite) TestGenerateFromList() {
	_, err := s.wordbank.Save(s.ctx, "demo", []string{"cat", "to"})
	s.Require().NoError(err)

	p, err := s.service.GenerateFromList(s.ctx, "demo", DefaultOptions())
	s.Require().NoError(err)
	s.Equal([]string{"CAT", "TO"}, p.WordsUsed)
}

func (s *GeneratorSuite) TestGenerateFromListNotFound() {
	_, err := s.service.GenerateFromList(s.ctx, "missing", DefaultOptions())
	s.ErrorIs(err, model.ErrWordListNotFound)
}

func (s *GeneratorSuite) TestOptionsConfig() {
	opts := Options{MaxHeight: 10, MaxWidth: 20, MaxRetryRounds: 3, BoundsPolicy: placement.BoundsSkipWord}
	cfg := opts.Config()

	s.Equal(10, cfg.MaxHeight)
	s.Equal(20, cfg.MaxWidth)
	s.Equal(3, cfg.MaxRetryRounds)
	s.Equal(placement.BoundsSkipWord, cfg.BoundsPolicy)
	s.Equal(' ', cfg.EmptyMarker)
}
