package log

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"gorm.io/gorm/logger"
)

var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
)

func init() {
	SetOutput(os.Stdout, os.Stderr)
}

// SetOutput redirects the leveled loggers. Info and Warn go to out, Error to errOut.
func SetOutput(out, errOut io.Writer) {
	Info = log.New(out,
		color.GreenString("[INFO] "),
		log.Ldate|log.Ltime|log.Lshortfile)
	Warn = log.New(out,
		color.YellowString("[WARN] "),
		log.Ldate|log.Ltime|log.Lshortfile)

	Error = log.New(errOut,
		color.RedString("[ERROR] "),
		log.Ldate|log.Ltime|log.Lshortfile)
}

// GormLogger routes SQL warnings and errors through the Warn logger.
func GormLogger() logger.Interface {
	return logger.New(Warn, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// MigrateLogger satisfies golang-migrate's Logger interface.
type MigrateLogger struct {
	verbose bool
}

func NewMigrateLogger(verbose bool) *MigrateLogger {
	return &MigrateLogger{verbose: verbose}
}

func (l *MigrateLogger) Printf(format string, v ...interface{}) {
	Info.Printf("[migrate] "+format, v...)
}

func (l *MigrateLogger) Verbose() bool {
	return l.verbose
}
