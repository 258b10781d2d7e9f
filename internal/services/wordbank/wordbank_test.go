package wordbank

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/crosswordgen/internal/dependencies/mocks"
	"github.com/mcoot/crosswordgen/internal/model"
	"github.com/mcoot/crosswordgen/internal/storage/memory"
	"github.com/mcoot/crosswordgen/internal/testutil"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"uppercases", []string{"lorem", "Dummy"}, []string{"LOREM", "DUMMY"}},
		{"drops short and non-alphabetic", []string{"a", "1", "", "ab", "a-b", "ok2"}, []string{"AB"}},
		{"de-duplicates case-insensitively", []string{"cat", "CAT", "Cat", "dog"}, []string{"CAT", "DOG"}},
		{"trims whitespace", []string{"  hello \t"}, []string{"HELLO"}},
		{"rejects inner whitespace", []string{"ice cream", "ice"}, []string{"ICE"}},
		{"rejects non-ascii letters", []string{"café", "naïve", "plain"}, []string{"PLAIN"}},
		{"empty input", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestReadWords(t *testing.T) {
	input := "# animals\ncat\n\n  dog  \n#skip\nzebra\n"
	words, err := ReadWords(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "zebra"}, words)
}

func TestValidateListName(t *testing.T) {
	assert.NoError(t, ValidateListName("animals"))
	assert.NoError(t, ValidateListName("week-12_easy"))
	assert.ErrorIs(t, ValidateListName(""), model.ErrInvalidWordListName)
	assert.ErrorIs(t, ValidateListName("Has Space"), model.ErrInvalidWordListName)
	assert.ErrorIs(t, ValidateListName("-leading"), model.ErrInvalidWordListName)
	assert.ErrorIs(t, ValidateListName(strings.Repeat("a", 65)), model.ErrInvalidWordListName)
}

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestSaveNormalizes() {
	list, err := s.service.Save(s.ctx, "demo", []string{"contoh", "dummy", "a", "lorem", "DUMMY"})
	s.Require().NoError(err)

	s.Equal([]string{"CONTOH", "DUMMY", "LOREM"}, list.Words)
	s.Equal(s.clock.Now(), list.UpdatedAt)
}

func (s *ServiceSuite) TestSaveIsPersisted() {
	_, err := s.service.Save(s.ctx, "demo", []string{"cat", "dog"})
	s.Require().NoError(err)

	retrieved, err := s.service.Get(s.ctx, "demo")
	s.Require().NoError(err)
	s.Equal([]string{"CAT", "DOG"}, retrieved.Words)
}

func (s *ServiceSuite) TestSaveRejectsEmptyAfterFiltering() {
	_, err := s.service.Save(s.ctx, "demo", []string{"a", "1", ""})
	s.ErrorIs(err, model.ErrInvalidInput)

	_, err = s.service.Get(s.ctx, "demo")
	s.ErrorIs(err, model.ErrWordListNotFound)
}

func (s *ServiceSuite) TestSaveRejectsBadName() {
	_, err := s.service.Save(s.ctx, "Bad Name", []string{"cat"})
	s.ErrorIs(err, model.ErrInvalidWordListName)
}

func (s *ServiceSuite) TestGetNotFound() {
	_, err := s.service.Get(s.ctx, "missing")
	s.ErrorIs(err, model.ErrWordListNotFound)
}

func (s *ServiceSuite) TestListAndDelete() {
	_, _ = s.service.Save(s.ctx, "one", []string{"cat"})
	_, _ = s.service.Save(s.ctx, "two", []string{"dog"})

	names, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"one", "two"}, names)

	s.Require().NoError(s.service.Delete(s.ctx, "one"))
	names, _ = s.service.List(s.ctx)
	s.Equal([]string{"two"}, names)

	s.ErrorIs(s.service.Delete(s.ctx, "one"), model.ErrWordListNotFound)
}

func (s *ServiceSuite) TestLoadFromFile() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	s.Require().NoError(os.WriteFile(path, []byte("# header\nlorem\nipsum\n\ndolor\n"), 0o600))

	list, err := s.service.LoadFromFile(s.ctx, "lorem", path)
	s.Require().NoError(err)
	s.Equal([]string{"LOREM", "IPSUM", "DOLOR"}, list.Words)
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	_, err := s.service.LoadFromFile(s.ctx, "lorem", filepath.Join(s.T().TempDir(), "nope.txt"))
	s.Error(err)
}
