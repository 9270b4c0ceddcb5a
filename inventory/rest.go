package inventory

import (
	"github.com/manyminds/api2go/jsonapi"
)

type RestModel struct {
	Id          string   `json:"-"`
	Identifiers []uint32 `json:"identifiers"`
	Count       int      `json:"count"`
}

func (r RestModel) GetName() string {
	return "owned"
}

func (r RestModel) GetID() string {
	return r.Id
}

func (r *RestModel) SetID(strId string) error {
	r.Id = strId
	return nil
}

func Transform(m Model) (RestModel, error) {
	return RestModel{
		Id:          m.Category().Name(),
		Identifiers: m.Identifiers(),
		Count:       m.Len(),
	}, nil
}

type SnapshotRestModel struct {
	Id     string      `json:"-"`
	Target string      `json:"target"`
	Base   uint64      `json:"base"`
	Owned  []RestModel `json:"-"`
}

func (r SnapshotRestModel) GetName() string {
	return "snapshots"
}

func (r SnapshotRestModel) GetID() string {
	return r.Id
}

func (r SnapshotRestModel) GetReferences() []jsonapi.Reference {
	return []jsonapi.Reference{
		{
			Type: "owned",
			Name: "owned",
		},
	}
}

func (r SnapshotRestModel) GetReferencedIDs() []jsonapi.ReferenceID {
	var result []jsonapi.ReferenceID
	for _, v := range r.Owned {
		result = append(result, jsonapi.ReferenceID{
			ID:   v.GetID(),
			Type: "owned",
			Name: "owned",
		})
	}
	return result
}

func (r SnapshotRestModel) GetReferencedStructs() []jsonapi.MarshalIdentifier {
	var result []jsonapi.MarshalIdentifier
	for key := range r.Owned {
		result = append(result, r.Owned[key])
	}
	return result
}

func TransformSnapshot(target string) func(s Snapshot) (SnapshotRestModel, error) {
	return func(s Snapshot) (SnapshotRestModel, error) {
		owned := make([]RestModel, 0, len(s.owned))
		for _, m := range s.owned {
			rm, err := Transform(m)
			if err != nil {
				return SnapshotRestModel{}, err
			}
			owned = append(owned, rm)
		}
		return SnapshotRestModel{
			Id:     s.SessionId().String(),
			Target: target,
			Base:   s.Base(),
			Owned:  owned,
		}, nil
	}
}
