package payments

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
	"github.com/yungbote/propdesk-backend/internal/domain/rental"
	"github.com/yungbote/propdesk-backend/internal/platform/dbctx"
	"github.com/yungbote/propdesk-backend/internal/platform/logger"
)

const LedgerProcessorName = "ledger"

// Ledger is the in-house processor: it mints account ids and keeps the
// account book in the payment_account table.
type Ledger struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLedger(db *gorm.DB, baseLog *logger.Logger) *Ledger {
	return &Ledger{db: db, log: baseLog.With("service", "PaymentLedger")}
}

func (l *Ledger) OpenAccount(dbc dbctx.Context, req AccountRequest) (Account, error) {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return Account{}, ErrEmptyToken
	}
	if req.EntityID == 0 {
		return Account{}, fmt.Errorf("open account for %s: missing entity id", req.Kind)
	}

	prefix := "acct_"
	if req.Role == entity.RolePayer {
		prefix = "cus_"
	}
	externalID := prefix + strings.ReplaceAll(uuid.New().String(), "-", "")

	meta, err := json.Marshal(map[string]any{
		"contact": req.Contact,
		"role":    string(req.Role),
	})
	if err != nil {
		return Account{}, fmt.Errorf("encode account metadata: %w", err)
	}

	row := &rental.PaymentAccount{
		EntityKind:       req.Kind.String(),
		EntityID:         req.EntityID,
		Role:             string(req.Role),
		Processor:        LedgerProcessorName,
		ExternalID:       externalID,
		TokenFingerprint: Fingerprint(token),
		Metadata:         datatypes.JSON(meta),
	}
	if err := dbc.Handle(l.db).Create(row).Error; err != nil {
		return Account{}, fmt.Errorf("record payment account: %w", err)
	}
	l.log.Info("Opened payment account",
		"kind", req.Kind.String(),
		"entity_id", req.EntityID,
		"role", string(req.Role),
		"external_id", externalID,
	)
	return Account{ExternalID: externalID, Processor: LedgerProcessorName}, nil
}

// Fingerprint is a stable, non-reversible identifier for a token.
func Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])[:16]
}
