/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logger

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevel_String 测试日志级别的字符串表示
func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{OFF, "OFF"},
		{Level(999), "UNKNOWN"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	for l := DEBUG; l <= OFF; l++ {
		got, err := ParseLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	_, err := ParseLevel("warn")
	assert.Error(t, err)
	_, err = ParseLevel("UNKNOWN")
	assert.Error(t, err)
}

// TestLogFormat 输出格式: [时间戳] [级别] 消息
func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(INFO, &buf)
	logger.Warn("%s is deprecated, use %s instead", "toDegrees", "degrees")

	line := strings.TrimSpace(buf.String())
	pattern := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\] \[WARN\] toDegrees is deprecated, use degrees instead$`)
	assert.Regexp(t, pattern, line)
}

// TestDefaultLogger_LevelFiltering 测试级别过滤
func TestDefaultLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		loggerLevel Level
		shouldLog   map[Level]bool
	}{
		{DEBUG, map[Level]bool{DEBUG: true, INFO: true, WARN: true, ERROR: true}},
		{INFO, map[Level]bool{DEBUG: false, INFO: true, WARN: true, ERROR: true}},
		{WARN, map[Level]bool{DEBUG: false, INFO: false, WARN: true, ERROR: true}},
		{ERROR, map[Level]bool{DEBUG: false, INFO: false, WARN: false, ERROR: true}},
		{OFF, map[Level]bool{DEBUG: false, INFO: false, WARN: false, ERROR: false}},
	}

	for _, test := range tests {
		t.Run(test.loggerLevel.String(), func(t *testing.T) {
			for level, want := range test.shouldLog {
				var buf bytes.Buffer
				logger := NewLogger(test.loggerLevel, &buf)
				switch level {
				case DEBUG:
					logger.Debug("message")
				case INFO:
					logger.Info("message")
				case WARN:
					logger.Warn("message")
				case ERROR:
					logger.Error("message")
				}
				assert.Equal(t, want, buf.Len() > 0, "level %s", level)
			}
		})
	}
}

// TestDefaultLogger_SetLevel 测试动态调整级别
func TestDefaultLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(DEBUG, &buf)

	logger.Debug("first")
	assert.Contains(t, buf.String(), "first")

	buf.Reset()
	logger.SetLevel(ERROR)
	logger.Warn("second")
	assert.Empty(t, buf.String())

	logger.SetLevel(OFF)
	logger.Error("third")
	assert.Empty(t, buf.String())
}

// TestConcurrentLogging 测试并发写日志
func TestConcurrentLogging(t *testing.T) {
	var buf bytes.Buffer
	var mu sync.Mutex
	logger := NewLogger(INFO, writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return buf.Write(p)
	}))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				logger.Info("goroutine %d message %d", id, j)
			}
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 100, strings.Count(buf.String(), "\n"))
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

func TestDiscardLogger(t *testing.T) {
	logger := NewDiscardLogger()
	require.NotNil(t, logger)
	logger.Debug("debug %s", "test")
	logger.Info("info %d", 123)
	logger.Warn("warn %v", true)
	logger.Error("error %s %d", "test", 456)
	logger.SetLevel(DEBUG)
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder(INFO)
	rec.Debug("hidden")
	rec.Info("resolved %s", "upper(name)")
	rec.Warn("%s is deprecated", "toDegrees")
	rec.Warn("%s is deprecated", "toRadians")

	assert.Equal(t, []Entry{
		{Level: INFO, Message: "resolved upper(name)"},
		{Level: WARN, Message: "toDegrees is deprecated"},
		{Level: WARN, Message: "toRadians is deprecated"},
	}, rec.Entries())
	assert.Equal(t, 2, rec.Count(WARN))
	assert.Equal(t, 0, rec.Count(DEBUG))

	entries := rec.Entries()
	entries[0].Message = "changed"
	assert.Equal(t, "resolved upper(name)", rec.Entries()[0].Message)

	rec.SetLevel(OFF)
	rec.Error("dropped")
	assert.Equal(t, 0, rec.Count(ERROR))

	rec.Reset()
	assert.Empty(t, rec.Entries())
}

// TestGlobalLogger 测试全局日志器的设置与恢复
func TestGlobalLogger(t *testing.T) {
	original := GetDefault()
	require.NotNil(t, original)
	defer SetDefault(original)

	rec := NewRecorder(DEBUG)
	SetDefault(rec)
	assert.Same(t, rec, GetDefault())

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
	assert.Len(t, rec.Entries(), 4)
}
