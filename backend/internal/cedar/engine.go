// Package cedar decides which decorations a reply must carry, using
// Cedar policies. Policies never block a reply; they only attach
// obligations through @obligation annotations.
package cedar

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cedar-policy/cedar-go"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

//go:embed policies.cedar
var defaultPolicies []byte

// DefaultPolicyName labels the embedded policy set.
const DefaultPolicyName = "embedded:policies.cedar"

// Decision represents the result of a policy evaluation
type Decision string

const (
	ALLOW Decision = "ALLOW"
	DENY  Decision = "DENY"
)

// Facts is the policy input for one answered query.
type Facts struct {
	SessionID      string
	Intent         string
	Asset          string // empty when the reply is not about one asset
	EnergyUse      string
	Sustainability int
}

// EvaluationResult contains the decision and any obligations
type EvaluationResult struct {
	Decision    Decision
	PolicyIDs   []string
	Obligations []string
}

// Engine wraps a Cedar policy set with hot-reloading support
type Engine struct {
	policySet     atomic.Pointer[cedar.PolicySet]
	policyVersion atomic.Pointer[string]
	PolicyPath    string

	watcher    *fsnotify.Watcher
	stopWatch  chan struct{}
	stopOnce   sync.Once
	logger     *zap.Logger
	reloadLock sync.Mutex
}

// PolicyVersion returns the current policy version (thread-safe)
func (e *Engine) PolicyVersion() string {
	v := e.policyVersion.Load()
	if v == nil {
		return ""
	}
	return *v
}

// NewDefaultEngine creates an Engine from the embedded policy set.
func NewDefaultEngine(logger *zap.Logger) *Engine {
	e := newEngine("", logger)
	if err := e.load(DefaultPolicyName, defaultPolicies); err != nil {
		panic(fmt.Sprintf("cedar: embedded policies are invalid: %v", err))
	}
	return e
}

// NewEngine creates an Engine and loads policies from a file.
func NewEngine(policyPath string, logger *zap.Logger) (*Engine, error) {
	e := newEngine(policyPath, logger)
	if err := e.reload(); err != nil {
		return nil, err
	}
	return e, nil
}

func newEngine(policyPath string, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		PolicyPath: policyPath,
		stopWatch:  make(chan struct{}),
		logger:     logger.Named("cedar"),
	}
}

// StartHotReload enables fsnotify file watching for policy hot-reloading
func (e *Engine) StartHotReload() error {
	if e.PolicyPath == "" {
		return fmt.Errorf("hot reload needs a policy file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	e.watcher = watcher

	if err := watcher.Add(e.PolicyPath); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch policy file: %w", err)
	}

	go e.watchLoop()

	e.logger.Info("hot-reload enabled", zap.String("path", e.PolicyPath))
	return nil
}

// StopHotReload stops the file watcher. It is safe to call more than once.
func (e *Engine) StopHotReload() {
	if e.watcher == nil {
		return
	}
	e.stopOnce.Do(func() {
		close(e.stopWatch)
		e.watcher.Close()
	})
}

func (e *Engine) watchLoop() {
	// editors often write a file in several steps
	var debounceTimer *time.Timer
	debounce := 500 * time.Millisecond

	for {
		select {
		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounce, func() {
					e.reloadLock.Lock()
					defer e.reloadLock.Unlock()

					oldVersion := e.PolicyVersion()
					if err := e.reload(); err != nil {
						e.logger.Warn("hot-reload failed, keeping previous policies", zap.Error(err))
					} else {
						e.logger.Info("hot-reload succeeded",
							zap.String("from", oldVersion),
							zap.String("to", e.PolicyVersion()))
					}
				})
			}
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			e.logger.Warn("watcher error", zap.Error(err))
		case <-e.stopWatch:
			return
		}
	}
}

// reload loads/reloads policies from the file
func (e *Engine) reload() error {
	data, err := os.ReadFile(e.PolicyPath)
	if err != nil {
		return fmt.Errorf("failed to read policy file: %w", err)
	}
	return e.load(e.PolicyPath, data)
}

func (e *Engine) load(name string, data []byte) error {
	ps, err := cedar.NewPolicySetFromBytes(name, data)
	if err != nil {
		return fmt.Errorf("failed to parse cedar policies %s: %w", name, err)
	}

	hash := sha256.Sum256(data)
	version := hex.EncodeToString(hash[:])[:12]

	e.policySet.Store(ps)
	e.policyVersion.Store(&version)
	return nil
}

// Evaluate runs the facts through the policy set. Every satisfied policy
// carrying an @obligation annotation contributes that obligation.
func (e *Engine) Evaluate(f Facts) EvaluationResult {
	ps := e.policySet.Load()
	if ps == nil {
		return EvaluationResult{Decision: DENY}
	}

	resource := "none"
	if f.Asset != "" {
		resource = f.Asset
	}

	req := cedar.Request{
		Principal: cedar.NewEntityUID("User", cedar.String(f.SessionID)),
		Action:    cedar.NewEntityUID("Action", "respond"),
		Resource:  cedar.NewEntityUID("Asset", cedar.String(resource)),
		Context: cedar.NewRecord(cedar.RecordMap{
			"intent":         cedar.String(f.Intent),
			"asset":          cedar.String(f.Asset),
			"energy_use":     cedar.String(f.EnergyUse),
			"sustainability": cedar.Long(int64(f.Sustainability)),
		}),
	}

	ok, diagnostics := cedar.Authorize(ps, cedar.EntityMap{}, req)
	if len(diagnostics.Errors) > 0 {
		e.logger.Debug("policy evaluation errors",
			zap.String("intent", f.Intent),
			zap.Int("errors", len(diagnostics.Errors)))
	}

	result := EvaluationResult{Decision: DENY}
	if ok {
		result.Decision = ALLOW
	}

	seen := make(map[string]bool)
	for _, reason := range diagnostics.Reasons {
		result.PolicyIDs = append(result.PolicyIDs, string(reason.PolicyID))

		p := ps.Get(reason.PolicyID)
		if p == nil {
			continue
		}
		if typeVal, ok := p.Annotations()["obligation"]; ok && !seen[string(typeVal)] {
			seen[string(typeVal)] = true
			result.Obligations = append(result.Obligations, string(typeVal))
		}
	}
	sort.Strings(result.Obligations)

	return result
}
