package service

import (
	"context"
	"sync"
	"time"

	"github.com/jfrosalesgt/dicki-backend/internal/config"
	"github.com/jfrosalesgt/dicki-backend/internal/dto"
	"github.com/jfrosalesgt/dicki-backend/internal/model"
	"github.com/jfrosalesgt/dicki-backend/internal/repository"
	"github.com/jfrosalesgt/dicki-backend/internal/worker"

	"gorm.io/gorm"
)

// ── In-memory repository stubs ────────────────────────────────────────────────

type stubUsuarioRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uint]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, nombreUsuario string) (*model.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.NombreUsuario == nombreUsuario {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindAll(_ context.Context, activo *bool) ([]model.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		if activo != nil && u.Activo != *activo {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUsuarioRepo) UpdatePassword(_ context.Context, id uint, claveHash, por string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.ClaveHash = claveHash
	u.CambiarClave = false
	u.UsuarioActualizacion = &por
	return nil
}

func (r *stubUsuarioRepo) UpdateLastAccess(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := nowTest()
	u.FechaUltimoAcceso = &now
	return nil
}

func (r *stubUsuarioRepo) IncrementFailedAttempts(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.IntentosFallidos++
	return nil
}

func (r *stubUsuarioRepo) ResetFailedAttempts(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.IntentosFallidos = 0
	return nil
}

type stubPerfilRepo struct{ perfiles []model.Perfil }

func (r *stubPerfilRepo) FindByUsuario(context.Context, uint) ([]model.Perfil, error) {
	return r.perfiles, nil
}
func (r *stubPerfilRepo) FindAll(context.Context, *bool) ([]model.Perfil, error) {
	return r.perfiles, nil
}

type stubRoleRepo struct{ roles []model.Role }

func (r *stubRoleRepo) FindByUsuario(context.Context, uint) ([]model.Role, error) {
	return r.roles, nil
}
func (r *stubRoleRepo) FindAll(context.Context, *bool) ([]model.Role, error) {
	return r.roles, nil
}

type stubModuloRepo struct{ modulos []model.Modulo }

func (r *stubModuloRepo) FindByUsuario(context.Context, uint) ([]model.Modulo, error) {
	return r.modulos, nil
}
func (r *stubModuloRepo) FindAll(context.Context, *bool) ([]model.Modulo, error) {
	return r.modulos, nil
}

// stubInvestigacionRepo mirrors the conditional-update semantics of the real
// repository: transitions re-check the state and fail with
// ErrTransicionPerdida when the row no longer matches. loseTransition forces
// that path to simulate a concurrent writer.
type stubInvestigacionRepo struct {
	mu             sync.Mutex
	nextID         uint
	invs           map[uint]*model.Investigacion
	loseTransition bool
}

func newStubInvestigacionRepo() *stubInvestigacionRepo {
	return &stubInvestigacionRepo{invs: make(map[uint]*model.Investigacion)}
}

func (r *stubInvestigacionRepo) seed(inv model.Investigacion) *model.Investigacion {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	inv.ID = r.nextID
	if inv.EstadoRevisionDicri == "" {
		inv.EstadoRevisionDicri = model.EstadoEnRegistro
	}
	inv.Activo = true
	r.invs[inv.ID] = &inv
	return &inv
}

func (r *stubInvestigacionRepo) Create(_ context.Context, inv *model.Investigacion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.invs {
		if existing.CodigoCaso == inv.CodigoCaso {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	inv.ID = r.nextID
	cp := *inv
	r.invs[inv.ID] = &cp
	return nil
}

func (r *stubInvestigacionRepo) FindByID(_ context.Context, id uint) (*model.Investigacion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invs[id]
	if !ok || !inv.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *stubInvestigacionRepo) FindAll(_ context.Context, filters dto.InvestigacionFilters) ([]model.Investigacion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Investigacion, 0, len(r.invs))
	for _, inv := range r.invs {
		if filters.EstadoRevision != "" && inv.EstadoRevisionDicri != filters.EstadoRevision {
			continue
		}
		if filters.Activo != nil && inv.Activo != *filters.Activo {
			continue
		}
		out = append(out, *inv)
	}
	return out, nil
}

func (r *stubInvestigacionRepo) Update(_ context.Context, inv *model.Investigacion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invs[inv.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *inv
	r.invs[inv.ID] = &cp
	return nil
}

func (r *stubInvestigacionRepo) SoftDelete(_ context.Context, id uint, por string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	inv.Activo = false
	inv.UsuarioActualizacion = &por
	return nil
}

func (r *stubInvestigacionRepo) transition(id uint, desde []string, apply func(*model.Investigacion)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loseTransition {
		return repository.ErrTransicionPerdida
	}
	inv, ok := r.invs[id]
	if !ok {
		return repository.ErrTransicionPerdida
	}
	for _, estado := range desde {
		if inv.EstadoRevisionDicri == estado {
			apply(inv)
			return nil
		}
	}
	return repository.ErrTransicionPerdida
}

func (r *stubInvestigacionRepo) SendToReview(_ context.Context, id uint, por string) error {
	return r.transition(id, []string{model.EstadoEnRegistro, model.EstadoRechazado}, func(inv *model.Investigacion) {
		inv.EstadoRevisionDicri = model.EstadoPendienteRevision
		inv.UsuarioActualizacion = &por
	})
}

func (r *stubInvestigacionRepo) Approve(_ context.Context, id, idRevisor uint, por string) error {
	return r.transition(id, []string{model.EstadoPendienteRevision, model.EstadoRechazado}, func(inv *model.Investigacion) {
		now := nowTest()
		inv.EstadoRevisionDicri = model.EstadoAprobado
		inv.IDUsuarioRevision = &idRevisor
		inv.FechaRevision = &now
		inv.UsuarioActualizacion = &por
	})
}

func (r *stubInvestigacionRepo) Reject(_ context.Context, id, idRevisor uint, justificacion, por string) error {
	return r.transition(id, []string{model.EstadoPendienteRevision}, func(inv *model.Investigacion) {
		now := nowTest()
		inv.EstadoRevisionDicri = model.EstadoRechazado
		inv.IDUsuarioRevision = &idRevisor
		inv.JustificacionRevision = &justificacion
		inv.FechaRevision = &now
		inv.UsuarioActualizacion = &por
	})
}

type stubEscenaRepo struct {
	mu      sync.Mutex
	nextID  uint
	escenas map[uint]*model.Escena
}

func newStubEscenaRepo() *stubEscenaRepo {
	return &stubEscenaRepo{escenas: make(map[uint]*model.Escena)}
}

func (r *stubEscenaRepo) Create(_ context.Context, e *model.Escena) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	e.ID = r.nextID
	cp := *e
	r.escenas[e.ID] = &cp
	return nil
}

func (r *stubEscenaRepo) FindByID(_ context.Context, id uint) (*model.Escena, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.escenas[id]
	if !ok || !e.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *stubEscenaRepo) FindByInvestigacion(_ context.Context, idInvestigacion uint) ([]model.Escena, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Escena{}
	// iterate in id order so the flattening tests are deterministic
	for id := uint(1); id <= r.nextID; id++ {
		e, ok := r.escenas[id]
		if ok && e.Activo && e.IDInvestigacion == idInvestigacion {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubEscenaRepo) Update(_ context.Context, e *model.Escena) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.escenas[e.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *e
	r.escenas[e.ID] = &cp
	return nil
}

func (r *stubEscenaRepo) SoftDelete(_ context.Context, id uint, por string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.escenas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.Activo = false
	e.UsuarioActualizacion = &por
	return nil
}

type stubIndicioRepo struct {
	mu       sync.Mutex
	nextID   uint
	indicios map[uint]*model.Indicio
}

func newStubIndicioRepo() *stubIndicioRepo {
	return &stubIndicioRepo{indicios: make(map[uint]*model.Indicio)}
}

func (r *stubIndicioRepo) Create(_ context.Context, i *model.Indicio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.indicios {
		if existing.CodigoIndicio == i.CodigoIndicio {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	i.ID = r.nextID
	cp := *i
	r.indicios[i.ID] = &cp
	return nil
}

func (r *stubIndicioRepo) FindByID(_ context.Context, id uint) (*model.Indicio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.indicios[id]
	if !ok || !i.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *i
	return &cp, nil
}

func (r *stubIndicioRepo) FindByEscena(_ context.Context, idEscena uint) ([]model.Indicio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Indicio{}
	for id := uint(1); id <= r.nextID; id++ {
		i, ok := r.indicios[id]
		if ok && i.Activo && i.IDEscena == idEscena {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (r *stubIndicioRepo) FindAll(_ context.Context, filters dto.IndicioFilters) ([]model.Indicio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Indicio{}
	for id := uint(1); id <= r.nextID; id++ {
		i, ok := r.indicios[id]
		if !ok {
			continue
		}
		if filters.EstadoActual != "" && i.EstadoActual != filters.EstadoActual {
			continue
		}
		if filters.IDEscena != nil && i.IDEscena != *filters.IDEscena {
			continue
		}
		out = append(out, *i)
	}
	return out, nil
}

func (r *stubIndicioRepo) Update(_ context.Context, i *model.Indicio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.indicios[i.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *i
	r.indicios[i.ID] = &cp
	return nil
}

func (r *stubIndicioRepo) SoftDelete(_ context.Context, id uint, por string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.indicios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	i.Activo = false
	i.UsuarioActualizacion = &por
	return nil
}

type stubFiscaliaRepo struct {
	mu        sync.Mutex
	nextID    uint
	fiscalias map[uint]*model.Fiscalia
}

func newStubFiscaliaRepo() *stubFiscaliaRepo {
	return &stubFiscaliaRepo{fiscalias: make(map[uint]*model.Fiscalia)}
}

func (r *stubFiscaliaRepo) Create(_ context.Context, f *model.Fiscalia) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	f.ID = r.nextID
	cp := *f
	r.fiscalias[f.ID] = &cp
	return nil
}

func (r *stubFiscaliaRepo) FindByID(_ context.Context, id uint) (*model.Fiscalia, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.fiscalias[id]
	if !ok || !f.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *stubFiscaliaRepo) FindAll(_ context.Context, activo *bool) ([]model.Fiscalia, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Fiscalia{}
	for id := uint(1); id <= r.nextID; id++ {
		f, ok := r.fiscalias[id]
		if !ok {
			continue
		}
		if activo != nil && f.Activo != *activo {
			continue
		}
		out = append(out, *f)
	}
	return out, nil
}

func (r *stubFiscaliaRepo) Update(_ context.Context, f *model.Fiscalia) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fiscalias[f.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *f
	r.fiscalias[f.ID] = &cp
	return nil
}

func (r *stubFiscaliaRepo) SoftDelete(_ context.Context, id uint, por string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.fiscalias[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	f.Activo = false
	f.UsuarioActualizacion = &por
	return nil
}

type stubTipoIndicioRepo struct {
	mu     sync.Mutex
	nextID uint
	tipos  map[uint]*model.TipoIndicio
}

func newStubTipoIndicioRepo() *stubTipoIndicioRepo {
	return &stubTipoIndicioRepo{tipos: make(map[uint]*model.TipoIndicio)}
}

func (r *stubTipoIndicioRepo) Create(_ context.Context, t *model.TipoIndicio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	t.ID = r.nextID
	cp := *t
	r.tipos[t.ID] = &cp
	return nil
}

func (r *stubTipoIndicioRepo) FindByID(_ context.Context, id uint) (*model.TipoIndicio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tipos[id]
	if !ok || !t.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *stubTipoIndicioRepo) FindAll(_ context.Context, activo *bool) ([]model.TipoIndicio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.TipoIndicio{}
	for id := uint(1); id <= r.nextID; id++ {
		t, ok := r.tipos[id]
		if !ok {
			continue
		}
		if activo != nil && t.Activo != *activo {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTipoIndicioRepo) Update(_ context.Context, t *model.TipoIndicio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tipos[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *t
	r.tipos[t.ID] = &cp
	return nil
}

func (r *stubTipoIndicioRepo) SoftDelete(_ context.Context, id uint, por string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tipos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Activo = false
	t.UsuarioActualizacion = &por
	return nil
}

type stubReportesRepo struct {
	filas     []dto.ReporteRevisionExpediente
	stats     dto.EstadisticasGenerales
	consultas int
}

func (r *stubReportesRepo) ReporteRevisionExpedientes(context.Context, dto.ReporteRevisionFilters) ([]dto.ReporteRevisionExpediente, error) {
	return r.filas, nil
}

func (r *stubReportesRepo) EstadisticasGenerales(context.Context) (*dto.EstadisticasGenerales, error) {
	r.consultas++
	cp := r.stats
	return &cp, nil
}

// stubNotificador records the enqueued payloads instead of touching Redis.
type stubNotificador struct {
	mu       sync.Mutex
	payloads []worker.NotificacionRevisionPayload
}

func (n *stubNotificador) EnqueueNotificacionRevision(_ context.Context, p worker.NotificacionRevisionPayload) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.payloads = append(n.payloads, p)
	return nil
}

// ── Shared helpers ────────────────────────────────────────────────────────────

const testSecret = "test_jwt_secret_32_chars_minimum!"

func nowTest() time.Time { return time.Now() }

func newTestCfg() *config.Config {
	return &config.Config{
		JWTSecret:          testSecret,
		JWTExpirationHours: 8,
		CoordinacionEmail:  "coordinacion@dicri.gob.gt",
	}
}
