package acquisition

import (
	"strconv"
	"time"
)

type RestModel struct {
	Id         uint32    `json:"-"`
	Category   string    `json:"category"`
	PartIndex  uint32    `json:"partIndex"`
	SessionId  string    `json:"sessionId"`
	AcquiredAt time.Time `json:"acquiredAt"`
}

func (r RestModel) GetName() string {
	return "acquisitions"
}

func (r RestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *RestModel) SetID(strId string) error {
	id, err := strconv.Atoi(strId)
	if err != nil {
		return err
	}
	r.Id = uint32(id)
	return nil
}

func Transform(m Model) (RestModel, error) {
	return RestModel{
		Id:         m.Id(),
		Category:   m.Category(),
		PartIndex:  m.PartIndex(),
		SessionId:  m.SessionId().String(),
		AcquiredAt: m.AcquiredAt(),
	}, nil
}
