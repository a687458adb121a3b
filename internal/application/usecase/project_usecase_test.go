package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcampos/albaranes-api/internal/application/dto"
	"github.com/jcampos/albaranes-api/internal/application/usecase"
	"github.com/jcampos/albaranes-api/internal/domain"
	"github.com/jcampos/albaranes-api/internal/domain/entity"
)

// projectEnv monta los tres repos que el caso de uso de proyectos necesita.
type projectEnv struct {
	uc       *usecase.ProjectUseCase
	clients  *fakeClientRepo
	projects *fakeProjectRepo
	users    *fakeUserRepo
	notifier *fakeNotifier
}

func newProjectEnv() *projectEnv {
	clients := newFakeClientRepo()
	projects := newFakeProjectRepo()
	users := newFakeUserRepo()
	notifier := &fakeNotifier{}
	return &projectEnv{
		uc:       usecase.NewProjectUseCase(projects, clients, users, notifier),
		clients:  clients,
		projects: projects,
		users:    users,
		notifier: notifier,
	}
}

func (e *projectEnv) addClient(id, ownerID string) {
	e.clients.clients[id] = &entity.Client{ID: id, Name: "cliente-" + id, CreatedBy: ownerID}
}

func TestProject_Create_CopiaCompaniaDelSujeto(t *testing.T) {
	env := newProjectEnv()
	env.users.add(userA, "Construcciones SA")
	env.addClient("c1", userA)

	out, err := env.uc.Create(userA, dto.CreateProjectRequest{Name: "obra norte", Client: "c1"})
	require.NoError(t, err)

	assert.Equal(t, "Construcciones SA", out.Company,
		"la compañía del sujeto se copia al proyecto al crearlo")
	assert.Equal(t, userA, out.CreatedBy)
	assert.False(t, out.Archived)
}

func TestProject_Create_ClienteInalcanzable_NoPersisteNada(t *testing.T) {
	env := newProjectEnv()
	env.users.add(userA, "")
	env.users.add(userB, "")
	env.addClient("c1", userB) // cliente de otro usuario

	_, err := env.uc.Create(userA, dto.CreateProjectRequest{Name: "obra", Client: "c1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, env.projects.projects, "la validación del cliente precede a la escritura")
}

func TestProject_Create_ClienteArchivado_Falla(t *testing.T) {
	env := newProjectEnv()
	env.users.add(userA, "")
	env.addClient("c1", userA)
	env.clients.clients["c1"].IsDeleted = true

	_, err := env.uc.Create(userA, dto.CreateProjectRequest{Name: "obra", Client: "c1"})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un cliente archivado está fuera de alcance para crear proyectos")
}

func TestProject_Get_CompaneroDeCompaniaAlcanza(t *testing.T) {
	env := newProjectEnv()
	env.users.add(userA, "Construcciones SA")
	env.users.add(userB, "Construcciones SA")
	env.addClient("c1", userA)

	out, err := env.uc.Create(userA, dto.CreateProjectRequest{Name: "obra norte", Client: "c1"})
	require.NoError(t, err)

	got, err := env.uc.Get(userB, out.ID)
	require.NoError(t, err, "un usuario de la misma compañía alcanza el proyecto")
	assert.Equal(t, out.ID, got.ID)
}

func TestProject_Get_CompaniaVaciaNoComparte(t *testing.T) {
	env := newProjectEnv()
	env.users.add(userA, "")
	env.users.add(userB, "")
	env.addClient("c1", userA)

	out, err := env.uc.Create(userA, dto.CreateProjectRequest{Name: "obra", Client: "c1"})
	require.NoError(t, err)

	_, err = env.uc.Get(userB, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"dos usuarios sin compañía no comparten nada aunque coincida el valor vacío")
}

func TestProject_List_ExcluyeArchivadosYOrdenaPorFecha(t *testing.T) {
	env := newProjectEnv()
	env.users.add(userA, "")
	env.addClient("c1", userA)

	p1, err := env.uc.Create(userA, dto.CreateProjectRequest{Name: "antiguo", Client: "c1"})
	require.NoError(t, err)
	p2, err := env.uc.Create(userA, dto.CreateProjectRequest{Name: "reciente", Client: "c1"})
	require.NoError(t, err)
	p3, err := env.uc.Create(userA, dto.CreateProjectRequest{Name: "archivado", Client: "c1"})
	require.NoError(t, err)

	// Fechas controladas para que el orden no dependa del reloj del test.
	env.projects.projects[p1.ID].CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	env.projects.projects[p2.ID].CreatedAt = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	env.projects.projects[p3.ID].CreatedAt = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err = env.uc.Archive(userA, p3.ID)
	require.NoError(t, err)

	list, err := env.uc.List(userA)
	require.NoError(t, err)
	require.Len(t, list, 2, "el listado excluye archivados")
	assert.Equal(t, "reciente", list[0].Name, "más recientes primero")
	assert.Equal(t, "antiguo", list[1].Name)
}

func TestProject_Archivado_SigueAlcanzableParaMutaciones(t *testing.T) {
	env := newProjectEnv()
	env.users.add(userA, "")
	env.addClient("c1", userA)
	out, err := env.uc.Create(userA, dto.CreateProjectRequest{Name: "obra", Client: "c1"})
	require.NoError(t, err)

	_, err = env.uc.Archive(userA, out.ID)
	require.NoError(t, err)

	// Lectura directa, restauración y borrado siguen funcionando.
	got, err := env.uc.Get(userA, out.ID)
	require.NoError(t, err)
	assert.True(t, got.Archived)

	restored, err := env.uc.Unarchive(userA, out.ID)
	require.NoError(t, err)
	assert.False(t, restored.Archived)

	_, err = env.uc.Archive(userA, out.ID)
	require.NoError(t, err)
	require.NoError(t, env.uc.Delete(userA, out.ID))
}

func TestProject_Update_FueraDeAlcance(t *testing.T) {
	env := newProjectEnv()
	env.users.add(userA, "Construcciones SA")
	env.users.add(userB, "Otra SL")
	env.addClient("c1", userA)
	out, err := env.uc.Create(userA, dto.CreateProjectRequest{Name: "obra", Client: "c1"})
	require.NoError(t, err)

	_, err = env.uc.Update(userB, out.ID, dto.UpdateProjectRequest{Name: "pirata", Client: "c1"})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"compañías distintas no comparten proyectos")
}

func TestProject_SujetoBorrado_NoAutorizado(t *testing.T) {
	env := newProjectEnv()
	env.users.add(userA, "")
	env.users.users[userA].IsDeleted = true

	_, err := env.uc.List(userA)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
