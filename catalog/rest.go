package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

type RestModel struct {
	Id       string `json:"-"`
	Category string `json:"category"`
	Index    uint32 `json:"index"`
	Name     string `json:"name"`
	Unlock   string `json:"unlock"`
	Owned    bool   `json:"owned"`
}

func (r RestModel) GetName() string {
	return "parts"
}

func (r RestModel) GetID() string {
	return r.Id
}

func (r *RestModel) SetID(strId string) error {
	idx := strings.LastIndex(strId, "-")
	if idx < 0 {
		return fmt.Errorf("malformed part id [%s]", strId)
	}
	index, err := strconv.Atoi(strId[idx+1:])
	if err != nil {
		return err
	}
	r.Id = strId
	r.Category = strId[:idx]
	r.Index = uint32(index)
	return nil
}

func partId(category string, index uint32) string {
	return fmt.Sprintf("%s-%d", category, index)
}

func Transform(e Entry) (RestModel, error) {
	return RestModel{
		Id:       partId(e.Category(), e.Index()),
		Category: e.Category(),
		Index:    e.Index(),
		Name:     e.Name(),
		Unlock:   e.Unlock(),
	}, nil
}

func TransformOwned(e Entry) (RestModel, error) {
	rm, err := Transform(e)
	if err != nil {
		return RestModel{}, err
	}
	rm.Owned = true
	return rm, nil
}

func TransformPart(p Part) (RestModel, error) {
	rm, err := Transform(p.Entry)
	if err != nil {
		return RestModel{}, err
	}
	rm.Owned = p.Owned()
	return rm, nil
}

// TransformUnknown describes an owned identifier the catalog has no entry for.
func TransformUnknown(category string) func(id uint32) (RestModel, error) {
	return func(id uint32) (RestModel, error) {
		return RestModel{
			Id:       partId(category, id),
			Category: category,
			Index:    id,
			Name:     "UNKNOWN",
			Owned:    true,
		}, nil
	}
}
