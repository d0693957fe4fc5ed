package request

import "frota_backoffice/internal/domain/entities"

// ChatSendRequest omits the sender; it always comes from the authenticated
// session. An empty toEmployeeId directs the message at management.
type ChatSendRequest struct {
	ToEmployeeID string `json:"toEmployeeId"`
	Content      string `json:"content"`
	Image        string `json:"image"`
}

func (r ChatSendRequest) ToEntity(fromEmployeeID string) entities.ChatMessage {
	return entities.ChatMessage{
		FromEmployeeID: fromEmployeeID,
		ToEmployeeID:   r.ToEmployeeID,
		Content:        r.Content,
		Image:          r.Image,
	}
}

type CityCreateRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name" binding:"required"`
	State string `json:"state"`
}

func (r CityCreateRequest) ToEntity() entities.City {
	return entities.City{ID: r.ID, Name: r.Name, State: r.State}
}

type CityUpdateRequest struct {
	Name  string `json:"name"`
	State string `json:"state"`
}
