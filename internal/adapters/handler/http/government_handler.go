package http

import (
	"net/http"

	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"go.uber.org/zap"
)

// GovernmentHandler serves the read-only government hub. Records are loaded
// with manifestoctl seed.
type GovernmentHandler struct {
	service ports.GovernmentService
	responder
}

func NewGovernmentHandler(service ports.GovernmentService, log *zap.Logger) *GovernmentHandler {
	return &GovernmentHandler{
		service:   service,
		responder: responder{log: log},
	}
}

// @Summary      Lists leaders
// @Description  Ordered by name. Filters combine.
// @Tags         government
// @Produce      json
// @Param        limit     query  int     false  "page size (default 50, max 200)"
// @Param        party     query  string  false  "exact party name"
// @Param        position  query  string  false  "exact position"
// @Success      200
// @Failure      400
// @Router       /leaders [get]
func (h *GovernmentHandler) ListLeaders(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	q := r.URL.Query()
	leaders, err := h.service.ListLeaders(r.Context(), ports.LeaderFilter{
		Limit:    limit,
		Party:    q.Get("party"),
		Position: q.Get("position"),
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, leaders)
}

func (h *GovernmentHandler) GetLeader(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	leader, err := h.service.GetLeader(r.Context(), id)
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, leader)
}

// @Summary      Lists departments
// @Tags         government
// @Produce      json
// @Param        limit  query  int     false  "page size (default 50, max 200)"
// @Param        type   query  string  false  "national, provincial or municipal"
// @Success      200
// @Failure      400
// @Router       /departments [get]
func (h *GovernmentHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	departments, err := h.service.ListDepartments(r.Context(), ports.DepartmentFilter{
		Limit: limit,
		Type:  domain.DepartmentType(r.URL.Query().Get("type")),
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, departments)
}

func (h *GovernmentHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	department, err := h.service.GetDepartment(r.Context(), id)
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, department)
}

// @Summary      Lists projects
// @Description  Newest first.
// @Tags         government
// @Produce      json
// @Param        limit          query  int     false  "page size (default 50, max 200)"
// @Param        stage          query  string  false  "planning, tender, in_progress, completed, on_hold or cancelled"
// @Param        department_id  query  string  false  "responsible department"
// @Success      200
// @Failure      400
// @Router       /projects [get]
func (h *GovernmentHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		h.error(w, r, err)
		return
	}
	departmentID, err := queryUUID(r, "department_id")
	if err != nil {
		h.error(w, r, err)
		return
	}

	projects, err := h.service.ListProjects(r.Context(), ports.ProjectFilter{
		Limit:        limit,
		Stage:        domain.ProjectStage(r.URL.Query().Get("stage")),
		DepartmentID: departmentID,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, projects)
}

func (h *GovernmentHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	project, err := h.service.GetProject(r.Context(), id)
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, project)
}

// @Summary      Lists parliament bills, sessions, votes and debates
// @Description  Latest session first.
// @Tags         government
// @Produce      json
// @Param        limit   query  int     false  "page size (default 50, max 200)"
// @Param        type    query  string  false  "bill, session, vote or debate"
// @Param        status  query  string  false  "draft, tabled, debating, voting, passed or rejected"
// @Success      200
// @Failure      400
// @Router       /parliament [get]
func (h *GovernmentHandler) ListParliament(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	q := r.URL.Query()
	items, err := h.service.ListParliament(r.Context(), ports.ParliamentFilter{
		Limit:  limit,
		Type:   domain.ParliamentItemType(q.Get("type")),
		Status: domain.ParliamentStatus(q.Get("status")),
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, items)
}
