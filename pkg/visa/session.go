// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package visa

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Session defaults.
const (
	DefaultTimeout  = 10 * time.Second
	DefaultBaudRate = 9600
)

// Session is one exclusively owned connection to an instrument. Commands
// and queries are newline terminated ASCII; replies have their line
// terminator stripped. A Session is not safe for concurrent use: it belongs
// to a single owner for its whole lifetime.
type Session interface {
	// Command formats according to a format specifier if arguments are given
	// and sends the resulting SCPI command. Leading and trailing whitespace
	// is removed before the line terminator is appended.
	Command(format string, a ...any) error
	// Query sends the given SCPI command and reads one reply line, with the
	// terminator and any trailing carriage return removed.
	Query(cmd string) (string, error)
	// Close releases the underlying transport. The session is unusable
	// afterwards.
	Close() error
}

// Option applies a setting to Open.
type Option func(*options)

type options struct {
	timeout time.Duration
	baud    int
	log     *logrus.Logger
}

func defaultOptions() options {
	return options{
		timeout: DefaultTimeout,
		baud:    DefaultBaudRate,
		log:     logrus.StandardLogger(),
	}
}

// WithTimeout sets the per-exchange I/O timeout. Values of zero or below
// are ignored.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithBaudRate sets the serial line rate for ASRL resources. Other resource
// types ignore it.
func WithBaudRate(rate int) Option {
	return func(o *options) {
		if rate > 0 {
			o.baud = rate
		}
	}
}

// WithLogger routes session command tracing (logged at debug level) to log
// instead of the logrus standard logger.
func WithLogger(log *logrus.Logger) Option { return func(o *options) { o.log = log } }

// Open parses the resource string and connects the matching transport. The
// returned session must be closed by the caller; instrument safety expects
// one session per run.
func Open(resource string, opts ...Option) (Session, error) {
	res, err := ParseResource(resource)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch res.Type {
	case TypeASRL:
		return openSerial(res, o)
	case TypeTCPIP:
		return openTCP(res, o)
	default:
		return openSim(res, o)
	}
}

// session adapts a byte stream into a Session. The buffered reader persists
// across queries so a reply straddling two reads is not lost.
type session struct {
	rwc  io.ReadWriteCloser
	r    *bufio.Reader
	term byte
	arm  func() error // arms the transport deadline for one exchange; may be nil
	log  *logrus.Logger
}

func newSession(rwc io.ReadWriteCloser, arm func() error, o options) *session {
	return &session{
		rwc:  rwc,
		r:    bufio.NewReader(rwc),
		term: '\n',
		arm:  arm,
		log:  o.log,
	}
}

func (s *session) Command(format string, a ...any) error {
	cmd := format
	if len(a) > 0 {
		cmd = fmt.Sprintf(format, a...)
	}
	return s.send(strings.TrimSpace(cmd))
}

func (s *session) Query(cmd string) (string, error) {
	if err := s.send(strings.TrimSpace(cmd)); err != nil {
		return "", err
	}

	line, err := s.r.ReadString(s.term)
	// A reply terminated by connection close instead of the terminator is
	// still a reply.
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("visa: reading reply: %w", err)
	}
	reply := strings.TrimRight(line, "\r\n")
	s.log.Debugf("visa rx %q", reply)
	return reply, nil
}

func (s *session) Close() error {
	if err := s.rwc.Close(); err != nil {
		return fmt.Errorf("visa: closing session: %w", err)
	}
	return nil
}

func (s *session) send(cmd string) error {
	s.log.Debugf("visa tx %q", cmd)
	if s.arm != nil {
		if err := s.arm(); err != nil {
			return fmt.Errorf("visa: arming deadline: %w", err)
		}
	}
	if _, err := s.rwc.Write(append([]byte(cmd), s.term)); err != nil {
		return fmt.Errorf("visa: writing command: %w", err)
	}
	return nil
}
