package keywords

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeed(t *testing.T) {
	now := time.Date(2026, time.March, 7, 9, 5, 3, 0, time.UTC)
	s := Seed(Environment{
		Home:    "/home/user",
		Cwd:     "/home/user/projects/app",
		Now:     now,
		Environ: []string{"EDITOR=vim", "EMPTY=", "WEIRD=a=b", "=skipped", "NOEQUALS"},
	})

	local := now.Local()

	assert.Equal(t, "/home/user", s.Value(Home))
	assert.True(t, s.Has(ProjectName))
	assert.Equal(t, "", s.Value(ProjectName))
	assert.Equal(t, "app", s.Value(CurrentDir))
	assert.Equal(t, "2026-03-07 09:05:03 UTC", s.Value("{{$NOW_UTC}}"))
	assert.Equal(t, local.Format(NowLayout), s.Value("{{$NOW}}"))
	assert.Equal(t, local.Format("2006"), s.Value("{{$YYYY}}"))
	assert.Equal(t, local.Format("06"), s.Value("{{$YY}}"))
	assert.Equal(t, local.Format("1"), s.Value("{{$MM}}"))
	assert.Equal(t, local.Format("2"), s.Value("{{$DD}}"))
	assert.Equal(t, "vim", s.Value("{{$EDITOR}}"))
	assert.True(t, s.Has("{{$EMPTY}}"))
	assert.Equal(t, "a=b", s.Value("{{$WEIRD}}"))
	assert.False(t, s.Has("{{$}}"))
	assert.False(t, s.Has("{{$NOEQUALS}}"))

	keys := s.Keys()
	assert.Equal(t, Home, keys[0])
	assert.Equal(t, ProjectName, keys[1])
	assert.Equal(t, CurrentDir, keys[2])
}

func TestSeedEnvironmentOverridesDefaults(t *testing.T) {
	s := Seed(Environment{
		Home:    "/home/user",
		Now:     time.Now(),
		Environ: []string{"HOME=/other"},
	})

	assert.Equal(t, "/other", s.Value(Home))
	assert.Equal(t, Home, s.Keys()[0])
	assert.False(t, s.Has(CurrentDir))
}

func TestInit(t *testing.T) {
	t.Setenv("SPARK_SEED_TEST", "yes")
	s := Init()
	assert.Equal(t, "yes", s.Value("{{$SPARK_SEED_TEST}}"))
	assert.True(t, s.Has(ProjectName))
}
