package usecase

import (
	"context"

	"kinconnect/internal/domain/entity"
	"kinconnect/internal/domain/workflow"

	"github.com/google/uuid"
)

// SessionHandle is a new session together with the bearer token that owns it.
type SessionHandle struct {
	Token   string          `json:"token"`
	Session *entity.Session `json:"session"`
}

// MemberInput creates a roster entry. Blank fields take the wizard defaults.
type MemberInput struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	ShirtType      string          `json:"shirtType" validate:"omitempty,oneof=MEN WOMEN KIDS"`
	Size           string          `json:"size" validate:"omitempty,oneof=XS S M L XL 2XL 3XL"`
	Quantity       *int            `json:"quantity" validate:"omitempty,min=0"`
	ShirtColorName string          `json:"shirtColorName"`
	StyleID        string          `json:"styleId"`
	OriginalImage  entity.ImageRef `json:"originalImage"`
}

// MemberPatch changes only the fields that are set.
type MemberPatch struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	ShirtType      *string          `json:"shirtType" validate:"omitempty,oneof=MEN WOMEN KIDS"`
	Size           *string          `json:"size" validate:"omitempty,oneof=XS S M L XL 2XL 3XL"`
	Quantity       *int             `json:"quantity" validate:"omitempty,min=0"`
	ShirtColorName *string          `json:"shirtColorName"`
	StyleID        *string          `json:"styleId"`
	OriginalImage  *entity.ImageRef `json:"originalImage"`
}

// DesignPatch changes the shared design settings.
type DesignPatch struct {
	StyleID            *string `json:"styleId"`
	FamilyFrontStyleID *string `json:"familyFrontStyleId"`
	FamilyLabel        *string `json:"familyLabel" validate:"omitempty,max=60"`
	ShirtColorName     *string `json:"shirtColorName"`
}

// Generation targets.
const (
	TargetFront  = "front"
	TargetMember = "member"
)

// GenerationFailure is one artwork that could not be generated. MemberID is
// set for member targets.
type GenerationFailure struct {
	Target   string    `json:"target"`
	MemberID uuid.UUID `json:"memberId"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
}

// GenerationReport is the outcome of generating every missing artwork.
type GenerationReport struct {
	Session   *entity.Session     `json:"session"`
	Generated []uuid.UUID         `json:"generated"`
	Failed    []GenerationFailure `json:"failed"`
	// Aborted is set when a vendor authorization failure stopped the run.
	Aborted bool `json:"aborted"`
}

// QuoteLine prices one member.
type QuoteLine struct {
	MemberID       uuid.UUID `json:"memberId"`
	Name           string    `json:"name"`
	ShirtType      string    `json:"shirtType"`
	ShirtColorName string    `json:"shirtColorName"`
	Size           string    `json:"size"`
	Quantity       int       `json:"quantity"`
	UnitCents      int64     `json:"unitCents"`
	LineCents      int64     `json:"lineCents"`
}

// Quote is the priced order summary.
type Quote struct {
	Lines      []QuoteLine `json:"lines"`
	TotalCents int64       `json:"totalCents"`
	// TotalDisplay is TotalCents formatted for display, e.g. "$50.00".
	TotalDisplay string `json:"totalDisplay"`
	Currency     string `json:"currency"`
}

// ShareLink is the shareable snapshot and the URL that opens it.
type ShareLink struct {
	URL   string                `json:"url"`
	State entity.ShareableState `json:"state"`
}

// WizardUsecase owns the order draft of every wizard session. All mutations
// go through it so step gating is enforced in one place.
type WizardUsecase interface {
	CreateSession(ctx context.Context) (*SessionHandle, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)
	// ResetSession discards the draft and returns to LANDING.
	ResetSession(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)

	Next(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)
	Back(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)
	JumpTo(ctx context.Context, sessionID uuid.UUID, step workflow.Step) (*entity.Session, error)

	// AnalyzePhoto stores the group photo, seeds the roster from detected people and advances to ROSTER.
	AnalyzePhoto(ctx context.Context, sessionID uuid.UUID, photo entity.ImageRef) (*entity.Session, error)

	AddMember(ctx context.Context, sessionID uuid.UUID, in MemberInput) (*entity.Session, error)
	UpdateMember(ctx context.Context, sessionID, memberID uuid.UUID, patch MemberPatch) (*entity.Session, error)
	RemoveMember(ctx context.Context, sessionID, memberID uuid.UUID) (*entity.Session, error)

	UpdateDesign(ctx context.Context, sessionID uuid.UUID, patch DesignPatch) (*entity.Session, error)
	// GenerateFront stylizes the family front artwork and tries to derive every member's back from it.
	GenerateFront(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)
	GenerateMember(ctx context.Context, sessionID, memberID uuid.UUID) (*entity.Session, error)
	GenerateAll(ctx context.Context, sessionID uuid.UUID) (*GenerationReport, error)

	Quote(ctx context.Context, sessionID uuid.UUID) (*Quote, error)

	UpdateShipping(ctx context.Context, sessionID uuid.UUID, shipping entity.ShippingDetails) (*entity.Session, error)
	PreviewCheckout(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)
	// Checkout pays for and places the order, moving the session to SUCCESS.
	Checkout(ctx context.Context, sessionID uuid.UUID, card entity.PaymentDetails) (*entity.Session, error)

	Share(ctx context.Context, sessionID uuid.UUID) (*ShareLink, error)
	ShareQRCode(ctx context.Context, sessionID uuid.UUID) ([]byte, error)
}
