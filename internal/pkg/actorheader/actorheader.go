// Package actorheader читает актора из заголовков, проставленных
// вышестоящим auth-прокси. Сама аутентификация живет не здесь.
package actorheader

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"fulfillment/internal/entities"
)

const (
	HeaderActorID           = "X-Actor-ID"
	HeaderActorCapabilities = "X-Actor-Capabilities"
)

var ErrMissingActor = errors.New("actor headers are missing or malformed")

func FromRequest(r *http.Request) (entities.Actor, error) {
	idValue := r.Header.Get(HeaderActorID)
	if idValue == "" {
		return entities.Actor{}, fmt.Errorf("%w: %s is empty", ErrMissingActor, HeaderActorID)
	}

	id, err := strconv.ParseInt(idValue, 10, 64)
	if err != nil || id <= 0 {
		return entities.Actor{}, fmt.Errorf("%w: bad %s %q", ErrMissingActor, HeaderActorID, idValue)
	}

	var capabilities []entities.Capability
	for _, raw := range strings.Split(r.Header.Get(HeaderActorCapabilities), ",") {
		switch capability := entities.Capability(strings.TrimSpace(raw)); capability {
		case entities.CapabilityAdmin, entities.CapabilityCourier:
			capabilities = append(capabilities, capability)
		}
	}

	return entities.Actor{
		ID:           id,
		Capabilities: capabilities,
	}, nil
}
