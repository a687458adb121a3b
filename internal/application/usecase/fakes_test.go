package usecase_test

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jcampos/albaranes-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria compartidos por los tests del paquete. Replican la
// semántica de los predicados de alcance de los adaptadores PostgreSQL:
// un registro fuera de alcance devuelve (nil, nil), igual que uno inexistente.
// ──────────────────────────────────────────────────────────────────────────────

// fakeNotifier captura las notificaciones emitidas.
type fakeNotifier struct {
	msgs []string
}

func (n *fakeNotifier) Notify(text string) { n.msgs = append(n.msgs, text) }

// ── clientes ──────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (r *fakeClientRepo) Create(client *entity.Client) error {
	cp := *client
	r.clients[client.ID] = &cp
	return nil
}

func (r *fakeClientRepo) ListOwned(ownerID string) ([]*entity.Client, error) {
	var list []*entity.Client
	for _, c := range r.clients {
		if c.CreatedBy == ownerID && !c.IsDeleted {
			cp := *c
			list = append(list, &cp)
		}
	}
	return list, nil
}

// reach aplica el predicado de alcance de clientes: propietario y no archivado.
func (r *fakeClientRepo) reach(id, ownerID string) *entity.Client {
	c, ok := r.clients[id]
	if !ok || c.CreatedBy != ownerID || c.IsDeleted {
		return nil
	}
	return c
}

func (r *fakeClientRepo) GetOwned(id, ownerID string) (*entity.Client, error) {
	c := r.reach(id, ownerID)
	if c == nil {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) UpdateOwned(client *entity.Client) (*entity.Client, error) {
	c := r.reach(client.ID, client.CreatedBy)
	if c == nil {
		return nil, nil
	}
	c.Name, c.Email, c.Phone, c.Address = client.Name, client.Email, client.Phone, client.Address
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) ArchiveOwned(id, ownerID string) (*entity.Client, error) {
	c := r.reach(id, ownerID)
	if c == nil {
		return nil, nil
	}
	c.IsDeleted = true
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) DeleteOwned(id, ownerID string) (bool, error) {
	c, ok := r.clients[id]
	if !ok || c.CreatedBy != ownerID {
		return false, nil
	}
	delete(r.clients, id)
	return true, nil
}

// ── proyectos ─────────────────────────────────────────────────────────────────

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]*entity.Project{}}
}

func (r *fakeProjectRepo) Create(project *entity.Project) error {
	cp := *project
	r.projects[project.ID] = &cp
	return nil
}

// reach aplica el predicado de alcance de proyectos: creador o misma compañía
// (la cláusula de compañía solo cuenta con compañía no vacía).
func (r *fakeProjectRepo) reach(id, userID, company string) *entity.Project {
	p, ok := r.projects[id]
	if !ok {
		return nil
	}
	if p.CreatedBy == userID || (p.Company != "" && p.Company == company) {
		return p
	}
	return nil
}

func (r *fakeProjectRepo) ListAccessible(userID, company string) ([]*entity.Project, error) {
	var list []*entity.Project
	for _, p := range r.projects {
		if p.Archived {
			continue
		}
		if p.CreatedBy == userID || (p.Company != "" && p.Company == company) {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *fakeProjectRepo) GetAccessible(id, userID, company string) (*entity.Project, error) {
	p := r.reach(id, userID, company)
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) UpdateAccessible(project *entity.Project, userID, company string) (*entity.Project, error) {
	p := r.reach(project.ID, userID, company)
	if p == nil {
		return nil, nil
	}
	p.Name, p.ClientID = project.Name, project.ClientID
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) SetArchived(id, userID, company string, archived bool) (*entity.Project, error) {
	p := r.reach(id, userID, company)
	if p == nil {
		return nil, nil
	}
	p.Archived = archived
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) DeleteAccessible(id, userID, company string) (bool, error) {
	if r.reach(id, userID, company) == nil {
		return false, nil
	}
	delete(r.projects, id)
	return true, nil
}

// ── albaranes ─────────────────────────────────────────────────────────────────

type fakeAlbaranRepo struct {
	albaranes map[string]*entity.Albaran
}

func newFakeAlbaranRepo() *fakeAlbaranRepo {
	return &fakeAlbaranRepo{albaranes: map[string]*entity.Albaran{}}
}

func (r *fakeAlbaranRepo) Create(albaran *entity.Albaran) error {
	cp := *albaran
	r.albaranes[albaran.ID] = &cp
	return nil
}

func (r *fakeAlbaranRepo) ListOwned(userID string) ([]*entity.Albaran, error) {
	var list []*entity.Albaran
	for _, a := range r.albaranes {
		if a.Usuario == userID {
			cp := *a
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeAlbaranRepo) GetOwned(id, userID string) (*entity.Albaran, error) {
	a, ok := r.albaranes[id]
	if !ok || a.Usuario != userID {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

// UpdateOwned replica el COALESCE del adaptador: nil conserva lo almacenado.
func (r *fakeAlbaranRepo) UpdateOwned(id, userID string, productos []entity.Producto, total *decimal.Decimal) (*entity.Albaran, error) {
	a, ok := r.albaranes[id]
	if !ok || a.Usuario != userID {
		return nil, nil
	}
	if productos != nil {
		a.Productos = productos
	}
	if total != nil {
		a.Total = *total
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAlbaranRepo) DeleteOwned(id, userID string) (bool, error) {
	a, ok := r.albaranes[id]
	if !ok || a.Usuario != userID {
		return false, nil
	}
	delete(r.albaranes, id)
	return true, nil
}

// ── usuarios (Identity Store mínimo para resolver la compañía del sujeto) ─────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) add(id, companyName string) {
	r.users[id] = &entity.User{ID: id, Company: entity.Company{Name: companyName}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Validate(id, code string) (bool, error) {
	u, ok := r.users[id]
	if !ok || u.ValidationCode == "" || u.ValidationCode != code {
		return false, nil
	}
	u.IsValidated = true
	u.ValidationCode = ""
	return true, nil
}

func (r *fakeUserRepo) UpdateProfile(id string, profile entity.Profile) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u.Profile = profile
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateCompany(id string, company entity.Company) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u.Company = company
	cp := *u
	return &cp, nil
}
