package distributor

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/elias-federation/internal/model"
	"github.com/goodnatureofminers/elias-federation/pkg/atomicfile"
	"github.com/goodnatureofminers/elias-federation/pkg/digest"
)

// Receiver is the peer side of a rule update. It verifies integrity, refuses
// versions older than what it already holds and stores accepted content under
// rulesDir/<rule type>/<file name>.
type Receiver struct {
	logger   *zap.Logger
	nodeID   string
	rulesDir string

	mu       sync.Mutex
	accepted map[string]model.UpdatePackage
}

func NewReceiver(nodeID, rulesDir string, logger *zap.Logger) *Receiver {
	return &Receiver{
		logger:   logger.Named("receiver").With(zap.String("node", nodeID)),
		nodeID:   nodeID,
		rulesDir: rulesDir,
		accepted: make(map[string]model.UpdatePackage),
	}
}

// Receive never returns an error; every outcome is an acknowledgment.
func (r *Receiver) Receive(ctx context.Context, pkg model.UpdatePackage) model.RuleUpdateResponse {
	target, ok := r.target(pkg)
	if !ok {
		return r.reject(pkg, ReasonInvalidPackage)
	}
	if digest.SHA256HexString(pkg.Content) != pkg.Checksum {
		return r.reject(pkg, ReasonChecksumMismatch)
	}
	if err := ctx.Err(); err != nil {
		return r.reject(pkg, err.Error())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if held, ok := r.accepted[target]; ok && pkg.Version <= held.Version {
		if pkg.Version == held.Version && pkg.Checksum == held.Checksum {
			return model.RuleUpdateResponse{NodeID: r.nodeID, Accepted: true}
		}
		return r.reject(pkg, ReasonStaleVersion)
	}

	if err := atomicfile.WriteFile(target, []byte(pkg.Content), 0o644); err != nil {
		r.logger.Error("store rule update", zap.String("path", target), zap.Error(err))
		return r.reject(pkg, ReasonWriteFailed)
	}
	r.accepted[target] = pkg

	r.logger.Info("rule update applied",
		zap.String("rule_type", pkg.RuleType),
		zap.String("path", target),
		zap.Int64("version", pkg.Version),
		zap.String("source", pkg.SourceNode),
	)
	return model.RuleUpdateResponse{NodeID: r.nodeID, Accepted: true}
}

// Path is where content for ruleType and sourcePath is stored.
func (r *Receiver) Path(ruleType, sourcePath string) string {
	target, _ := r.target(model.UpdatePackage{RuleType: ruleType, FilePath: sourcePath})
	return target
}

func (r *Receiver) target(pkg model.UpdatePackage) (string, bool) {
	dir, name := filepath.Base(pkg.RuleType), filepath.Base(pkg.FilePath)
	for _, part := range []string{dir, name} {
		if part == "" || part == "." || part == ".." || part == string(os.PathSeparator) {
			return "", false
		}
	}
	return filepath.Join(r.rulesDir, dir, name), true
}

func (r *Receiver) reject(pkg model.UpdatePackage, reason string) model.RuleUpdateResponse {
	r.logger.Warn("rule update rejected",
		zap.String("rule_type", pkg.RuleType),
		zap.String("file_path", pkg.FilePath),
		zap.Int64("version", pkg.Version),
		zap.String("reason", reason),
	)
	return model.RuleUpdateResponse{NodeID: r.nodeID, Accepted: false, Reason: reason}
}
