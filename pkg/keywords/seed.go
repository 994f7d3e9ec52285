package keywords

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/spark/pkg/errors"
)

// Timestamp layouts used for the NOW and NOW_UTC keywords
const (
	NowUTCLayout = "2006-01-02 15:04:05.999999999 UTC"
	NowLayout    = "2006-01-02 15:04:05.999999999 -07:00"
)

// Environment is the process state the default keywords are derived from
type Environment struct {
	Home    string
	Cwd     string
	Now     time.Time
	Environ []string
}

// CurrentEnvironment captures the environment of the running process
func CurrentEnvironment() Environment {
	env := Environment{
		Now:     time.Now(),
		Environ: os.Environ(),
	}
	if home, err := os.UserHomeDir(); err == nil {
		env.Home = home
	} else {
		env.Home = os.Getenv("HOME")
	}
	if cwd, err := os.Getwd(); err == nil {
		env.Cwd = cwd
	}
	return env
}

// Init returns a store seeded from the running process
func Init() *Store {
	return Seed(CurrentEnvironment())
}

// Seed returns a store holding the default keywords for env:
// HOME, an empty PROJECTNAME, CURRENTDIR, NOW_UTC, NOW, YYYY, YY, MM, DD and
// one token per environment variable.
func Seed(env Environment) *Store {
	s := New()

	if env.Home != "" {
		s.Set(Home, env.Home)
	}

	s.Set(ProjectName, "")

	if env.Cwd != "" {
		s.Set(CurrentDir, filepath.Base(env.Cwd))
	}

	now := env.Now
	if now.IsZero() {
		now = time.Now()
	}
	local := now.Local()

	s.SetName("NOW_UTC", now.UTC().Format(NowUTCLayout))
	s.SetName("NOW", local.Format(NowLayout))
	s.SetName("YYYY", strconv.Itoa(local.Year()))
	s.SetName("YY", local.Format("06"))
	s.SetName("MM", strconv.Itoa(int(local.Month())))
	s.SetName("DD", strconv.Itoa(local.Day()))

	for _, kv := range env.Environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		s.SetName(name, value)
	}

	return s
}

// ParsePairs parses a comma separated list of name=value pairs, as given to
// the --from flag, into a store of bare tokens. Names and values are trimmed.
func ParsePairs(pairs string) (*Store, error) {
	s := New()
	for _, pair := range strings.Split(pairs, ",") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid keyword pair %q, expected name=value", strings.TrimSpace(pair)).
				WithDetail("pair", pair)
		}
		s.SetName(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return s, nil
}
