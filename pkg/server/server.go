package server

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bastiangx/phoneword/internal/logger"
	"github.com/bastiangx/phoneword/internal/metrics"
	"github.com/bastiangx/phoneword/pkg/config"
	"github.com/bastiangx/phoneword/pkg/mnemonic"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// StatsProvider reports dictionary counters for the stats action.
type StatsProvider interface {
	Stats() map[string]int
}

// Server handles the IPC for phone number conversion
type Server struct {
	converter    mnemonic.IConverter
	stats        StatsProvider
	config       config.ServerConfig
	recorder     *metrics.Recorder
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server reading requests from r and writing responses to w.
func NewServer(converter mnemonic.IConverter, stats StatsProvider, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		converter: converter,
		stats:     stats,
		config:    cfg.Server,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
		logger:    logger.New("server"),
	}
}

// SetRecorder attaches a metrics recorder.
func (s *Server) SetRecorder(recorder *metrics.Recorder) {
	s.recorder = recorder
}

// Start announces readiness and serves requests until the input is exhausted.
func (s *Server) Start() error {
	s.logger.Debug("Starting Server.")

	if err := s.encoder.Encode(map[string]string{"status": "ready"}); err != nil {
		return fmt.Errorf("failed to send ready status: %w", err)
	}

	for {
		// Whole values are read first so a message of the wrong shape
		// does not leave its body in the stream.
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			return fmt.Errorf("reading request: %w", err)
		}
		s.requestCount++

		var request Request
		if err := msgpack.Unmarshal(raw, &request); err != nil {
			s.logger.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			continue
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches a decoded request by action
func (s *Server) handleRequest(request Request) {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	switch request.Action {
	case "", ActionConvert:
		s.handleConvert(request)
	case ActionStats:
		s.send(StatsResponse{ID: request.ID, Status: "ok", Stats: s.stats.Stats()})
	default:
		s.sendError(request.ID, fmt.Sprintf("unknown action: %s", request.Action), 400)
	}
}

// handleConvert validates the batch before searching. Renderings grow
// exponentially with length, so each number is counted before it is expanded.
func (s *Server) handleConvert(request Request) {
	if len(request.Numbers) == 0 {
		s.reject(request.ID, "missing 'n' parameter")
		return
	}
	if s.config.MaxBatch > 0 && len(request.Numbers) > s.config.MaxBatch {
		s.reject(request.ID, fmt.Sprintf("batch exceeds maximum of %d numbers", s.config.MaxBatch))
		return
	}
	if s.config.MaxDigits > 0 {
		for _, number := range request.Numbers {
			if digits := mnemonic.Clean(number); len(digits) > s.config.MaxDigits {
				s.reject(request.ID, fmt.Sprintf("number %s exceeds maximum length of %d digits", digits, s.config.MaxDigits))
				return
			}
		}
	}
	if s.config.MaxRenderings > 0 {
		for _, number := range request.Numbers {
			if s.converter.Count(number, s.config.MaxRenderings) > s.config.MaxRenderings {
				s.reject(request.ID, fmt.Sprintf("number %s exceeds maximum of %d renderings", mnemonic.Clean(number), s.config.MaxRenderings))
				return
			}
		}
	}

	start := time.Now()
	results := s.converter.Process(request.Numbers)
	elapsed := time.Since(start)
	s.recorder.ObserveBatch(results, elapsed)

	response := ConvertResponse{
		ID:        request.ID,
		Results:   make([]NumberResult, 0, len(results)),
		TimeTaken: elapsed.Microseconds(),
	}
	for _, number := range sortedNumbers(results) {
		response.Results = append(response.Results, NumberResult{Number: number, Renderings: results[number]})
		response.Count += len(results[number])
	}
	s.logger.Debugf("Request %s: %d numbers, %d renderings in %v", request.ID, len(results), response.Count, elapsed)
	s.send(response)
}

func (s *Server) reject(id, message string) {
	s.recorder.Rejected()
	s.logger.Debug("Rejected request", "id", id, "reason", message)
	s.sendError(id, message, 400)
}

// send encodes one response onto the output stream
func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

func sortedNumbers(results map[string][]string) []string {
	numbers := make([]string, 0, len(results))
	for number := range results {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)
	return numbers
}
