package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jbweber/homelab/nettree/internal/inventory"
)

// ComputerResponse describes a single computer
type ComputerResponse struct {
	Name       string   `json:"name"`
	Addresses  []string `json:"addresses"`
	Components []string `json:"components"`
}

// PartitionRequest is one partition of an AddDiskRequest
type PartitionRequest struct {
	SizeGiB int    `json:"size_gib"`
	Label   string `json:"label"`
}

// AddDiskRequest is the body of POST .../computers/{computer}/disks
type AddDiskRequest struct {
	Kind       string             `json:"kind"`
	SizeGiB    int                `json:"size_gib"`
	Partitions []PartitionRequest `json:"partitions"`
}

func newComputerResponse(c *inventory.Computer) ComputerResponse {
	addresses := c.Addresses()
	components := c.Components()

	response := ComputerResponse{
		Name:       c.Name(),
		Addresses:  make([]string, len(addresses)),
		Components: make([]string, len(components)),
	}
	for i, addr := range addresses {
		response.Addresses[i] = addr.Value()
	}
	for i, comp := range components {
		response.Components[i] = comp.Label()
	}
	return response
}

// getComputerHandler handles GET /api/v0/networks/{network}/computers/{computer}.
//
// The first computer with a matching name wins when names repeat.
// Response: 200 OK with the computer, 404 if the network or computer is missing.
func (a *API) getComputerHandler(w http.ResponseWriter, r *http.Request) {
	network, err := a.networks.FindByID(r.Context(), chi.URLParam(r, "network"))
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	computer, err := network.FindComputer(chi.URLParam(r, "computer"))
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	a.writeJSON(w, http.StatusOK, newComputerResponse(computer))
}

// addDiskHandler handles POST /api/v0/networks/{network}/computers/{computer}/disks.
//
// Request: JSON body with "kind" (ssd, magnetic or hdd), "size_gib" and
// optional "partitions".
// Response: 201 Created with the updated computer, 400 for an unknown disk
// kind, 404 if the network or computer is missing.
func (a *API) addDiskHandler(w http.ResponseWriter, r *http.Request) {
	var req AddDiskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	kind, err := inventory.ParseDiskKind(req.Kind)
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	disk := inventory.NewDisk(kind, req.SizeGiB)
	for _, p := range req.Partitions {
		disk.AddPartition(p.SizeGiB, p.Label)
	}

	name := chi.URLParam(r, "computer")
	var response ComputerResponse
	_, err = a.networks.Update(r.Context(), chi.URLParam(r, "network"), func(n *inventory.Network) error {
		c, err := n.FindComputer(name)
		if err != nil {
			return err
		}
		c.AddComponent(disk)
		response = newComputerResponse(c)
		return nil
	})
	if err != nil {
		a.writeErr(w, r, err)
		return
	}

	a.log.Infow("disk added", "computer", name, "disk", disk.Label())
	a.writeJSON(w, http.StatusCreated, response)
}
