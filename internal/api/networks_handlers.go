package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jbweber/homelab/nettree/internal/inventory"
)

// CloneNetworkRequest names the copy created by POST /api/v0/networks/{network}/clone
type CloneNetworkRequest struct {
	Name string `json:"name"`
}

// NetworkSummary describes a network without its full tree
type NetworkSummary struct {
	Name      string   `json:"name"`
	Computers []string `json:"computers"`
}

func summarize(n *inventory.Network) NetworkSummary {
	computers := n.Computers()
	names := make([]string, len(computers))
	for i, c := range computers {
		names[i] = c.Name()
	}
	return NetworkSummary{Name: n.Name(), Computers: names}
}

// listNetworksHandler handles GET /api/v0/networks.
//
// Response: 200 OK with the stored networks in name order.
func (a *API) listNetworksHandler(w http.ResponseWriter, r *http.Request) {
	networks, err := a.networks.FindAll(r.Context())
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	response := make([]NetworkSummary, len(networks))
	for i, n := range networks {
		response[i] = summarize(n)
	}

	a.writeJSON(w, http.StatusOK, response)
}

// renderNetworkHandler handles GET /api/v0/networks/{network}.
//
// Response: 200 OK with the rendered tree as text/plain, 404 if not found.
func (a *API) renderNetworkHandler(w http.ResponseWriter, r *http.Request) {
	network, err := a.networks.FindByID(r.Context(), chi.URLParam(r, "network"))
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(network.String())); err != nil {
		a.log.Warnw("failed to write rendered network", "network", network.Name(), "error", err)
	}
}

// cloneNetworkHandler handles POST /api/v0/networks/{network}/clone.
//
// Request: JSON body with field "name", the name of the copy.
// Response: 201 Created with the copy's summary, 400 for a missing name,
// 404 if the source does not exist, 409 if the name is taken.
func (a *API) cloneNetworkHandler(w http.ResponseWriter, r *http.Request) {
	var req CloneNetworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		a.writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	source, err := a.networks.FindByID(r.Context(), chi.URLParam(r, "network"))
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	created, err := a.networks.Create(r.Context(), source.CloneAs(req.Name))
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	a.log.Infow("network cloned", "source", source.Name(), "clone", created.Name())
	a.writeJSON(w, http.StatusCreated, summarize(created))
}

// deleteNetworkHandler handles DELETE /api/v0/networks/{network}.
//
// Response: 204 No Content, 404 if not found.
func (a *API) deleteNetworkHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "network")
	if err := a.networks.DeleteByID(r.Context(), name); err != nil {
		a.writeErr(w, r, err)
		return
	}

	a.log.Infow("network deleted", "network", name)
	w.WriteHeader(http.StatusNoContent)
}
