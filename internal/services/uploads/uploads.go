package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/MyelinBots/nabeatsu-go/internal/apperror"
	"github.com/MyelinBots/nabeatsu-go/internal/log"
	"github.com/MyelinBots/nabeatsu-go/internal/services/context_manager"
)

type Service interface {
	// Save stores the stream under a new unique name in the upload directory
	// and returns that name.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	Dir() string
}

type Impl struct {
	dir string
	now func() time.Time
}

func New(dir string) Service {
	return &Impl{dir: dir, now: time.Now}
}

func (s *Impl) Dir() string {
	return s.dir
}

// SanitizeName keeps the base name of an uploaded file, replacing anything
// outside letters, digits and "-_." with '-'.
func SanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" {
		name = ""
	}
	name = strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, name)
	name = strings.TrimLeft(name, ".")
	if name == "" {
		return "file"
	}
	return name
}

func (s *Impl) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", apperror.Internalf(err, "create upload dir %s", s.dir)
	}

	base := SanitizeName(originalName)
	ts := s.now().UnixMilli()

	var (
		out      *os.File
		filename string
		err      error
	)
	for attempt := 0; attempt < 5; attempt++ {
		filename = fmt.Sprintf("%d-%s", ts, base)
		if attempt > 0 {
			filename = fmt.Sprintf("%d-%d-%s", ts, attempt, base)
		}
		out, err = os.OpenFile(filepath.Join(s.dir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil || !os.IsExist(err) {
			break
		}
	}
	if err != nil {
		return "", apperror.Internalf(err, "create upload file")
	}

	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", apperror.Internalf(err, "write upload %s", filename)
	}
	if err := out.Close(); err != nil {
		return "", apperror.Internalf(err, "close upload %s", filename)
	}

	log.Info.Printf("[%s] stored upload %s", context_manager.GetRequestIDContext(ctx), filename)
	return filename, nil
}
