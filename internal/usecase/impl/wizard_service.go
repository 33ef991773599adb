package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"kinconnect/config"
	deliverycontext "kinconnect/internal/delivery/context"
	"kinconnect/internal/domain/entity"
	domainerrors "kinconnect/internal/domain/errors"
	"kinconnect/internal/domain/garment"
	"kinconnect/internal/domain/repository"
	"kinconnect/internal/domain/service"
	"kinconnect/internal/domain/workflow"
	"kinconnect/internal/errors"
	"kinconnect/internal/usecase"
	"kinconnect/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	frontDescription = "A stylized family portrait illustration of the whole family, designed for the front of a t-shirt. " +
		"Show exactly the people from the supplied photo and do not add any new or extra characters."

	memberDescriptionSuffix = ". Match the art style, clothing, and overall look of the family front illustration for \"%s\". " +
		"Only show this one person, no extra characters or additional people. " +
		"Use a simple, clear background suitable for the back of a t-shirt."

	frontLabelFallback  = "Our Family"
	promptLabelFallback = "our family shirt design"

	fallbackMemberDescription = "A cheerful family member"

	// deriveConcurrency bounds the per-member work when backs are cut from the front artwork.
	deriveConcurrency = 4
)

// wizardService implements the usecase.WizardUsecase interface.
type wizardService struct {
	sessions   repository.SessionRepository
	tokens     service.TokenService
	analyzer   service.PhotoAnalyzer
	stylizer   service.Stylizer
	remover    service.BackgroundRemover
	compositor service.ImageCompositor
	qrcodes    service.QRCodeService
	orders     usecase.OrderUsecase

	unitPriceCents int64
	currency       string
	shareBaseURL   string

	logger *slog.Logger
	now    func() time.Time
}

// WizardServiceParams holds dependencies for WizardService, injected by Fx.
type WizardServiceParams struct {
	fx.In

	Sessions   repository.SessionRepository
	Tokens     service.TokenService
	Analyzer   service.PhotoAnalyzer
	Stylizer   service.Stylizer
	Remover    service.BackgroundRemover
	Compositor service.ImageCompositor
	QRCodes    service.QRCodeService
	Orders     usecase.OrderUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// NewWizardService is the constructor for wizardService.
func NewWizardService(params WizardServiceParams) usecase.WizardUsecase {
	s := &wizardService{
		sessions:       params.Sessions,
		tokens:         params.Tokens,
		analyzer:       params.Analyzer,
		stylizer:       params.Stylizer,
		remover:        params.Remover,
		compositor:     params.Compositor,
		qrcodes:        params.QRCodes,
		orders:         params.Orders,
		unitPriceCents: params.Config.Pricing.UnitPriceCents,
		currency:       params.Config.Pricing.Currency,
		logger:         params.Logger,
		now:            time.Now,
	}
	if params.Config.QRCode != nil {
		s.shareBaseURL = params.Config.QRCode.BaseURL
	}

	return s
}

func (s *wizardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateSession starts a session at LANDING and issues its bearer token.
func (s *wizardService) CreateSession(ctx context.Context) (*usecase.SessionHandle, error) {
	session := entity.NewSession(s.now())
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "create session")
	}

	token, err := s.tokens.IssueSessionToken(session.ID)
	if err != nil {
		return nil, errors.Wrap(err, "issue session token")
	}

	s.log(ctx).InfoContext(ctx, "wizard session created", slog.String("session_id", session.ID.String()))

	return &usecase.SessionHandle{Token: token, Session: session}, nil
}

func (s *wizardService) GetSession(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

func (s *wizardService) ResetSession(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	return s.sessions.Update(ctx, sessionID, func(session *entity.Session) error {
		m := session.Machine()
		m.Reset()
		session.Step = m.Current()
		session.ReplaceDraft(entity.NewOrderDraft())
		session.Confirmation = nil
		session.FrontGenerating = false
		session.PlacingOrder = false

		return nil
	})
}

// transition applies one machine operation to the stored session.
func (s *wizardService) transition(ctx context.Context, sessionID uuid.UUID, op func(*workflow.Machine, workflow.Facts) error) (*entity.Session, error) {
	return s.sessions.Update(ctx, sessionID, func(session *entity.Session) error {
		m := session.Machine()
		if err := op(&m, session.Draft.Facts(s.unitPriceCents)); err != nil {
			return err
		}
		session.Step = m.Current()

		return nil
	})
}

func (s *wizardService) Next(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	return s.transition(ctx, sessionID, func(m *workflow.Machine, facts workflow.Facts) error {
		return m.Next(facts)
	})
}

func (s *wizardService) Back(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	return s.transition(ctx, sessionID, func(m *workflow.Machine, _ workflow.Facts) error {
		return m.Back()
	})
}

func (s *wizardService) JumpTo(ctx context.Context, sessionID uuid.UUID, step workflow.Step) (*entity.Session, error) {
	return s.transition(ctx, sessionID, func(m *workflow.Machine, _ workflow.Facts) error {
		return m.JumpTo(step)
	})
}

// editDraft runs fn on the draft after checking that action is allowed.
func (s *wizardService) editDraft(ctx context.Context, sessionID uuid.UUID, action workflow.Action, fn func(*entity.OrderDraft) error) (*entity.Session, error) {
	return s.sessions.Update(ctx, sessionID, func(session *entity.Session) error {
		if err := session.Machine().Require(action); err != nil {
			return err
		}

		return fn(&session.Draft)
	})
}

// AnalyzePhoto detects people in the photo and seeds one member per person.
// A person whose crop fails keeps an empty original image.
func (s *wizardService) AnalyzePhoto(ctx context.Context, sessionID uuid.UUID, photo entity.ImageRef) (*entity.Session, error) {
	if photo.Empty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is required")
	}

	snapshot, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := snapshot.Machine().Require(workflow.ActionAnalyzePhoto); err != nil {
		return nil, err
	}

	people, err := s.analyzer.AnalyzePhoto(ctx, photo)
	if err != nil {
		return nil, errors.Wrap(err, "analyze group photo")
	}

	draft := snapshot.Draft
	members := make([]entity.Member, 0, len(people))
	for i, person := range people {
		m := entity.NewMember(fmt.Sprintf("Member %d", i+1), person.Description, draft.ShirtColorName, draft.StyleID)
		if person.ValidBox() {
			crop, err := s.compositor.CropToBox(ctx, photo, person.Box)
			if err != nil {
				s.log(ctx).WarnContext(ctx, "crop of detected person failed",
					slog.Int("person", i),
					slog.Any("error", err),
				)
			} else {
				m.OriginalImage = crop
			}
		}
		members = append(members, m)
	}
	if len(members) == 0 {
		m := entity.NewMember("Member 1", fallbackMemberDescription, draft.ShirtColorName, draft.StyleID)
		m.OriginalImage = photo
		members = append(members, m)
	}

	s.log(ctx).InfoContext(ctx, "group photo analyzed",
		slog.String("session_id", sessionID.String()),
		slog.Int("detected", len(people)),
	)

	return s.sessions.Update(ctx, sessionID, func(session *entity.Session) error {
		m := session.Machine()
		if err := m.Require(workflow.ActionAnalyzePhoto); err != nil {
			return err
		}
		if session.DraftEpoch != snapshot.DraftEpoch {
			return domainerrors.ErrDraftSuperseded
		}

		session.DraftEpoch++
		session.Draft.GroupPhoto = photo
		session.Draft.Members = members
		session.Draft.FamilyFrontImage = ""
		session.Draft.CheckoutPreview = ""

		if err := m.Next(session.Draft.Facts(s.unitPriceCents)); err != nil {
			return err
		}
		session.Step = m.Current()

		return nil
	})
}

func validateStyle(id string) error {
	if _, ok := entity.LookupStyle(id); !ok {
		return domainerrors.ErrValidationFailed.WithDetails("unknown style " + id)
	}

	return nil
}

func validateColor(group garment.Group, name string) error {
	if _, ok := garment.LookupColor(name); !ok {
		return domainerrors.ErrValidationFailed.WithDetails("unknown shirt color " + name)
	}
	if !garment.ColorAllowed(group, name) {
		return domainerrors.ErrValidationFailed.WithDetails(name + " is not available for " + string(group))
	}

	return nil
}

func (s *wizardService) AddMember(ctx context.Context, sessionID uuid.UUID, in usecase.MemberInput) (*entity.Session, error) {
	return s.editDraft(ctx, sessionID, workflow.ActionEditRoster, func(draft *entity.OrderDraft) error {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			name = fmt.Sprintf("Member %d", len(draft.Members)+1)
		}

		m := entity.NewMember(name, in.Description, draft.ShirtColorName, firstNonBlank(in.StyleID, draft.StyleID))
		m.OriginalImage = in.OriginalImage

		if in.ShirtType != "" {
			group, ok := garment.ParseGroup(in.ShirtType)
			if !ok {
				return domainerrors.ErrValidationFailed.WithDetails("unknown shirt type " + in.ShirtType)
			}
			m.Group = group
		}
		if in.Size != "" {
			size, ok := garment.ParseSize(in.Size)
			if !ok {
				return domainerrors.ErrValidationFailed.WithDetails("unknown size " + in.Size)
			}
			m.Size = size
		}
		if in.Quantity != nil {
			if *in.Quantity < 0 {
				return domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
			}
			m.Quantity = *in.Quantity
		}
		if in.ShirtColorName != "" {
			if err := validateColor(m.Group, in.ShirtColorName); err != nil {
				return err
			}
			m.ShirtColorName = in.ShirtColorName
		}
		if in.StyleID != "" {
			if err := validateStyle(in.StyleID); err != nil {
				return err
			}
		}

		draft.Members = append(draft.Members, m)

		return nil
	})
}

// UpdateMember applies a partial update. Switching group keeps the color
// only when the new group stocks it.
func (s *wizardService) UpdateMember(ctx context.Context, sessionID, memberID uuid.UUID, patch usecase.MemberPatch) (*entity.Session, error) {
	return s.editDraft(ctx, sessionID, workflow.ActionEditRoster, func(draft *entity.OrderDraft) error {
		idx := draft.MemberIndex(memberID)
		if idx < 0 {
			return domainerrors.ErrMemberNotFound
		}
		m := &draft.Members[idx]

		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Description != nil {
			m.Description = *patch.Description
		}
		if patch.OriginalImage != nil {
			m.OriginalImage = *patch.OriginalImage
		}
		if patch.Size != nil {
			size, ok := garment.ParseSize(*patch.Size)
			if !ok {
				return domainerrors.ErrValidationFailed.WithDetails("unknown size " + *patch.Size)
			}
			m.Size = size
		}
		if patch.Quantity != nil {
			if *patch.Quantity < 0 {
				return domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
			}
			m.Quantity = *patch.Quantity
		}
		if patch.StyleID != nil {
			if *patch.StyleID != "" {
				if err := validateStyle(*patch.StyleID); err != nil {
					return err
				}
			}
			m.StyleID = *patch.StyleID
		}
		if patch.ShirtType != nil {
			group, ok := garment.ParseGroup(*patch.ShirtType)
			if !ok {
				return domainerrors.ErrValidationFailed.WithDetails("unknown shirt type " + *patch.ShirtType)
			}
			m.Group = group
			m.ShirtColorName = garment.NormalizeColor(group, m.ShirtColorName)
		}
		if patch.ShirtColorName != nil {
			if err := validateColor(m.GroupChoice().Group, *patch.ShirtColorName); err != nil {
				return err
			}
			m.ShirtColorName = *patch.ShirtColorName
		}

		return nil
	})
}

func (s *wizardService) RemoveMember(ctx context.Context, sessionID, memberID uuid.UUID) (*entity.Session, error) {
	return s.editDraft(ctx, sessionID, workflow.ActionEditRoster, func(draft *entity.OrderDraft) error {
		idx := draft.MemberIndex(memberID)
		if idx < 0 {
			return domainerrors.ErrMemberNotFound
		}
		draft.Members = append(draft.Members[:idx], draft.Members[idx+1:]...)

		return nil
	})
}

func (s *wizardService) UpdateDesign(ctx context.Context, sessionID uuid.UUID, patch usecase.DesignPatch) (*entity.Session, error) {
	return s.editDraft(ctx, sessionID, workflow.ActionEditDesign, func(draft *entity.OrderDraft) error {
		if patch.StyleID != nil {
			if err := validateStyle(*patch.StyleID); err != nil {
				return err
			}
			draft.StyleID = *patch.StyleID
		}
		if patch.FamilyFrontStyleID != nil {
			if *patch.FamilyFrontStyleID != "" {
				if err := validateStyle(*patch.FamilyFrontStyleID); err != nil {
					return err
				}
			}
			draft.FamilyFrontStyleID = *patch.FamilyFrontStyleID
		}
		if patch.FamilyLabel != nil {
			draft.FamilyLabel = *patch.FamilyLabel
		}
		if patch.ShirtColorName != nil {
			if _, ok := garment.LookupColor(*patch.ShirtColorName); !ok {
				return domainerrors.ErrValidationFailed.WithDetails("unknown shirt color " + *patch.ShirtColorName)
			}
			draft.ShirtColorName = *patch.ShirtColorName
		}

		return nil
	})
}

// removeBackground uses the remote remover and falls back to the local
// neutral-background strip when it is not configured or fails.
func (s *wizardService) removeBackground(ctx context.Context, img entity.ImageRef) (entity.ImageRef, error) {
	out, err := s.remover.RemoveBackground(ctx, img)
	if err == nil {
		return out, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}

	if errors.Is(err, domainerrors.ErrVendorNotConfigured) {
		s.log(ctx).DebugContext(ctx, "background remover not configured, using local strip")
	} else {
		s.log(ctx).WarnContext(ctx, "background removal failed, using local strip", slog.Any("error", err))
	}

	return s.compositor.StripBackground(ctx, img)
}

// GenerateFront stylizes the group photo into the family front artwork.
func (s *wizardService) GenerateFront(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	snapshot, err := s.sessions.Update(ctx, sessionID, func(session *entity.Session) error {
		if err := session.Machine().Require(workflow.ActionGenerate); err != nil {
			return err
		}
		if session.Draft.GroupPhoto.Empty() {
			return domainerrors.ErrNoGroupPhoto
		}
		if session.FrontGenerating {
			return domainerrors.ErrGenerationInProgress.WithDetails("family front")
		}
		session.FrontGenerating = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	draft := snapshot.Draft
	front, backs, genErr := s.generateFront(ctx, draft)

	superseded := false
	session, err := s.sessions.Update(context.WithoutCancel(ctx), sessionID, func(session *entity.Session) error {
		if session.DraftEpoch != snapshot.DraftEpoch {
			superseded = true

			return nil
		}
		session.FrontGenerating = false
		if genErr != nil {
			return nil
		}

		session.Draft.FamilyFrontImage = front
		for i := range session.Draft.Members {
			if back, ok := backs[session.Draft.Members[i].ID]; ok {
				session.Draft.Members[i].GeneratedImage = back
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	if superseded {
		s.log(ctx).InfoContext(ctx, "draft replaced during front generation, discarding result",
			slog.String("session_id", sessionID.String()),
		)

		return nil, domainerrors.ErrDraftSuperseded.WithDetails("family front")
	}
	if genErr != nil {
		return nil, genErr
	}

	s.log(ctx).InfoContext(ctx, "family front generated",
		slog.String("session_id", sessionID.String()),
		slog.Int("derived_backs", len(backs)),
	)

	return session, nil
}

func (s *wizardService) generateFront(ctx context.Context, draft entity.OrderDraft) (entity.ImageRef, map[uuid.UUID]entity.ImageRef, error) {
	raw, err := s.stylizer.Stylize(ctx, service.StylizeRequest{
		Reference:     draft.GroupPhoto,
		Description:   frontDescription,
		StyleModifier: draft.FrontStyle().PromptModifier,
	})
	if err != nil {
		return "", nil, errors.Wrap(err, "stylize family front")
	}

	backs := s.deriveBacks(ctx, raw, draft.Members)

	clean, err := s.removeBackground(ctx, raw)
	if err != nil {
		return "", nil, err
	}
	front, err := s.compositor.OverlayText(ctx, clean, draft.LabelOr(frontLabelFallback))
	if err != nil {
		return "", nil, errors.Wrap(err, "label family front")
	}

	return front, backs, nil
}

// deriveBacks cuts every member's back artwork out of the stylized front when
// the re-detected people line up with the roster. It returns nil when the
// shortcut does not apply; a member whose derivation fails is left out.
func (s *wizardService) deriveBacks(ctx context.Context, front entity.ImageRef, members []entity.Member) map[uuid.UUID]entity.ImageRef {
	logger := s.log(ctx)

	if !front.IsDataURL() {
		logger.DebugContext(ctx, "front artwork is not inline, skipping back derivation")

		return nil
	}

	people, err := s.analyzer.AnalyzePhoto(ctx, front)
	if err != nil {
		logger.WarnContext(ctx, "re-detection on front artwork failed, skipping back derivation", slog.Any("error", err))

		return nil
	}
	if len(people) == 0 || len(people) != len(members) {
		logger.WarnContext(ctx, "detected people do not match roster, skipping back derivation",
			slog.Int("detected", len(people)),
			slog.Int("members", len(members)),
		)

		return nil
	}
	for _, p := range people {
		if !p.ValidBox() {
			logger.WarnContext(ctx, "invalid box on front artwork, skipping back derivation")

			return nil
		}
	}

	backs := make(map[uuid.UUID]entity.ImageRef, len(members))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(deriveConcurrency)
	for i, m := range members {
		g.Go(func() error {
			back, err := s.deriveBack(ctx, front, people[i].Box, m.FirstName())
			if err != nil {
				logger.WarnContext(ctx, "back derivation failed for member",
					slog.String("member_id", m.ID.String()),
					slog.Any("error", err),
				)

				return nil
			}

			mu.Lock()
			backs[m.ID] = back
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait()

	return backs
}

func (s *wizardService) deriveBack(ctx context.Context, front entity.ImageRef, box []int, firstName string) (entity.ImageRef, error) {
	crop, err := s.compositor.CropToBox(ctx, front, box)
	if err != nil {
		return "", err
	}
	clean, err := s.removeBackground(ctx, crop)
	if err != nil {
		return "", err
	}

	return s.compositor.OverlayText(ctx, clean, firstName)
}

// GenerateMember stylizes one member's back artwork.
func (s *wizardService) GenerateMember(ctx context.Context, sessionID, memberID uuid.UUID) (*entity.Session, error) {
	var member entity.Member
	snapshot, err := s.sessions.Update(ctx, sessionID, func(session *entity.Session) error {
		if err := session.Machine().Require(workflow.ActionGenerate); err != nil {
			return err
		}
		idx := session.Draft.MemberIndex(memberID)
		if idx < 0 {
			return domainerrors.ErrMemberNotFound
		}
		if session.Draft.Members[idx].Generating {
			return domainerrors.ErrGenerationInProgress
		}
		session.Draft.Members[idx].Generating = true
		member = session.Draft.Members[idx]

		return nil
	})
	if err != nil {
		return nil, err
	}

	artwork, genErr := s.generateMember(ctx, snapshot.Draft, member)

	superseded := false
	session, err := s.sessions.Update(context.WithoutCancel(ctx), sessionID, func(session *entity.Session) error {
		idx := session.Draft.MemberIndex(memberID)
		if session.DraftEpoch != snapshot.DraftEpoch || idx < 0 {
			superseded = true

			return nil
		}
		session.Draft.Members[idx].Generating = false
		if genErr == nil {
			session.Draft.Members[idx].GeneratedImage = artwork
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	if superseded {
		return nil, domainerrors.ErrDraftSuperseded.WithDetails("member " + memberID.String())
	}
	if genErr != nil {
		return nil, genErr
	}

	return session, nil
}

func (s *wizardService) generateMember(ctx context.Context, draft entity.OrderDraft, m entity.Member) (entity.ImageRef, error) {
	firstName := m.FirstName()
	description := firstNonBlank(m.Description, "A portrait of "+firstName) +
		fmt.Sprintf(memberDescriptionSuffix, draft.LabelOr(promptLabelFallback))

	raw, err := s.stylizer.Stylize(ctx, service.StylizeRequest{
		Reference:     entity.FirstImage(m.OriginalImage, draft.GroupPhoto),
		Description:   description,
		StyleModifier: draft.MemberStyle(m).PromptModifier,
	})
	if err != nil {
		return "", errors.Wrap(err, "stylize member")
	}

	clean, err := s.removeBackground(ctx, raw)
	if err != nil {
		return "", err
	}
	named, err := s.compositor.OverlayText(ctx, clean, firstName)
	if err != nil {
		return "", errors.Wrap(err, "name member artwork")
	}

	return named, nil
}

func generationFailure(target string, memberID uuid.UUID, err error) usecase.GenerationFailure {
	failure := usecase.GenerationFailure{Target: target, MemberID: memberID, Code: "INTERNAL_ERROR", Message: err.Error()}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		failure.Code = appErr.ErrorCode()
		failure.Message = appErr.Message()
	}

	return failure
}

// stopsGeneration reports whether a failure ends a generate-all run.
func stopsGeneration(err error) bool {
	return errors.Is(err, domainerrors.ErrVendorUnauthorized) || errors.Is(err, domainerrors.ErrDraftSuperseded)
}

// GenerateAll runs the front first and then every member still missing
// artwork, one at a time. A vendor authorization failure or a reset stops the run.
func (s *wizardService) GenerateAll(ctx context.Context, sessionID uuid.UUID) (*usecase.GenerationReport, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.Machine().Require(workflow.ActionGenerate); err != nil {
		return nil, err
	}

	report := &usecase.GenerationReport{
		Generated: []uuid.UUID{},
		Failed:    []usecase.GenerationFailure{},
	}

	if !session.Draft.GroupPhoto.Empty() && session.Draft.FamilyFrontImage.Empty() {
		if _, err := s.GenerateFront(ctx, sessionID); err != nil {
			report.Failed = append(report.Failed, generationFailure(usecase.TargetFront, uuid.Nil, err))
			if stopsGeneration(err) {
				return s.finishReport(ctx, sessionID, report, true)
			}
		}

		if session, err = s.sessions.Get(ctx, sessionID); err != nil {
			return nil, err
		}
	}

	for _, m := range session.Draft.Members {
		if !m.GeneratedImage.Empty() {
			continue
		}

		if _, err := s.GenerateMember(ctx, sessionID, m.ID); err != nil {
			s.log(ctx).WarnContext(ctx, "member generation failed",
				slog.String("member_id", m.ID.String()),
				slog.Any("error", err),
			)
			report.Failed = append(report.Failed, generationFailure(usecase.TargetMember, m.ID, err))
			if stopsGeneration(err) {
				return s.finishReport(ctx, sessionID, report, true)
			}

			continue
		}
		report.Generated = append(report.Generated, m.ID)
	}

	return s.finishReport(ctx, sessionID, report, false)
}

func (s *wizardService) finishReport(ctx context.Context, sessionID uuid.UUID, report *usecase.GenerationReport, aborted bool) (*usecase.GenerationReport, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	report.Session = session
	report.Aborted = aborted

	return report, nil
}

// Quote prices every member. Quantity 0 members are listed at zero.
func (s *wizardService) Quote(ctx context.Context, sessionID uuid.UUID) (*usecase.Quote, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	draft := session.Draft
	quote := &usecase.Quote{
		Lines:      make([]usecase.QuoteLine, 0, len(draft.Members)),
		TotalCents: draft.TotalCents(s.unitPriceCents),
		Currency:   s.currency,
	}
	quote.TotalDisplay = util.FormatCents(quote.TotalCents)
	for _, m := range draft.Members {
		line := usecase.QuoteLine{
			MemberID:       m.ID,
			Name:           m.Name,
			ShirtType:      string(m.GroupChoice().Group),
			ShirtColorName: firstNonBlank(m.ShirtColorName, draft.ShirtColorName),
			Size:           string(m.Size),
			Quantity:       m.Quantity,
			UnitCents:      s.unitPriceCents,
		}
		if m.Quantity > 0 {
			line.LineCents = int64(m.Quantity) * s.unitPriceCents
		}
		quote.Lines = append(quote.Lines, line)
	}

	return quote, nil
}

func (s *wizardService) UpdateShipping(ctx context.Context, sessionID uuid.UUID, shipping entity.ShippingDetails) (*entity.Session, error) {
	return s.editDraft(ctx, sessionID, workflow.ActionEditCheckout, func(draft *entity.OrderDraft) error {
		if strings.TrimSpace(shipping.Country) == "" {
			shipping.Country = "US"
		}
		draft.Shipping = shipping

		return nil
	})
}

// PreviewCheckout renders the family wearing the front design.
func (s *wizardService) PreviewCheckout(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.Machine().Require(workflow.ActionPreview); err != nil {
		return nil, err
	}

	draft, draftEpoch := session.Draft, session.DraftEpoch
	if draft.GroupPhoto.Empty() {
		return nil, domainerrors.ErrNoGroupPhoto
	}
	if draft.FamilyFrontImage.Empty() {
		return nil, domainerrors.ErrNoFrontArtwork
	}

	preview, err := s.stylizer.PreviewOutfit(ctx, draft.GroupPhoto, draft.FamilyFrontImage, draft.LabelOr(frontLabelFallback))
	if err != nil {
		return nil, errors.Wrap(err, "render checkout preview")
	}

	return s.sessions.Update(ctx, sessionID, func(session *entity.Session) error {
		if session.DraftEpoch != draftEpoch {
			return domainerrors.ErrDraftSuperseded.WithDetails("checkout preview")
		}
		session.Draft.CheckoutPreview = preview

		return nil
	})
}

func validateCard(card entity.PaymentDetails) error {
	var missing []string
	if strings.TrimSpace(card.CardNumber) == "" {
		missing = append(missing, "cardNumber")
	}
	if strings.TrimSpace(card.Expiry) == "" {
		missing = append(missing, "expiry")
	}
	if strings.TrimSpace(card.CVC) == "" {
		missing = append(missing, "cvc")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("missing payment fields: " + strings.Join(missing, ", "))
	}

	return nil
}

// Checkout pays for the draft and places the order. Only one checkout per
// session runs at a time.
func (s *wizardService) Checkout(ctx context.Context, sessionID uuid.UUID, card entity.PaymentDetails) (*entity.Session, error) {
	if err := validateCard(card); err != nil {
		return nil, err
	}

	snapshot, err := s.sessions.Update(ctx, sessionID, func(session *entity.Session) error {
		if err := session.Machine().Require(workflow.ActionPlaceOrder); err != nil {
			return err
		}
		if session.PlacingOrder {
			return domainerrors.ErrOrderInProgress
		}
		if missing := session.Draft.Shipping.MissingFields(); len(missing) > 0 {
			return domainerrors.ErrValidationFailed.WithDetails("missing shipping fields: " + strings.Join(missing, ", "))
		}
		session.PlacingOrder = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	req := snapshot.Draft.OrderRequest()
	req.FamilyImage = entity.FirstImage(snapshot.Draft.FamilyFrontImage, snapshot.Draft.GroupPhoto)

	confirmation, orderErr := s.orders.PlaceOrder(ctx, req, card)

	superseded := false
	session, err := s.sessions.Update(context.WithoutCancel(ctx), sessionID, func(session *entity.Session) error {
		if session.DraftEpoch != snapshot.DraftEpoch {
			superseded = true

			return nil
		}
		session.PlacingOrder = false
		if orderErr != nil {
			return nil
		}

		session.Confirmation = confirmation
		m := session.Machine()
		if err := m.Complete(); err != nil {
			s.log(ctx).WarnContext(ctx, "order placed but session left checkout", slog.Any("error", err))

			return nil
		}
		session.Step = m.Current()

		return nil
	})
	if err != nil {
		return nil, err
	}
	if orderErr != nil {
		return nil, orderErr
	}
	if superseded {
		s.log(ctx).WarnContext(ctx, "order placed for a draft that was reset, confirmation not attached",
			slog.String("session_id", sessionID.String()),
			slog.String("order_id", confirmation.OrderID),
		)

		return nil, domainerrors.ErrDraftSuperseded.WithDetails("order " + confirmation.OrderID + " was placed before the reset")
	}

	s.log(ctx).InfoContext(ctx, "order placed",
		slog.String("session_id", sessionID.String()),
		slog.String("order_id", confirmation.OrderID),
		slog.String("total", util.FormatCents(confirmation.TotalCents)),
	)

	return session, nil
}

func (s *wizardService) Share(ctx context.Context, sessionID uuid.UUID) (*usecase.ShareLink, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.Machine().Require(workflow.ActionShare); err != nil {
		return nil, err
	}

	return &usecase.ShareLink{
		URL:   s.shareBaseURL + session.ID.String(),
		State: session.Draft.Shareable(s.unitPriceCents),
	}, nil
}

func (s *wizardService) ShareQRCode(ctx context.Context, sessionID uuid.UUID) ([]byte, error) {
	link, err := s.Share(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodes.PNG(link.URL)
	if err != nil {
		return nil, errors.Wrap(err, "render share QR code")
	}

	return png, nil
}
