package logging

import (
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings for FileAppender.
const (
	maxLogFileSizeMB  = 10
	maxLogFileBackups = 3
)

// FileAppender writes the same lines as ConsoleAppender to a log file that is rotated once it
// grows past maxLogFileSizeMB.
type FileAppender struct {
	*ConsoleAppender
	file *lumberjack.Logger
}

// NewFileAppender creates an appender writing to filename. The file is opened on the first write.
func NewFileAppender(filename string) *FileAppender {
	file := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxLogFileSizeMB,
		MaxBackups: maxLogFileBackups,
		Compress:   true,
	}
	return &FileAppender{ConsoleAppender: NewWriterAppender(file), file: file}
}

// Close closes the current log file.
func (appender *FileAppender) Close() error {
	return appender.file.Close()
}
