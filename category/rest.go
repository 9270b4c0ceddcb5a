package category

type RestModel struct {
	Id      string `json:"-"`
	Ordinal uint32 `json:"ordinal"`
	Total   uint32 `json:"total"`
}

func (r RestModel) GetName() string {
	return "categories"
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
		Id:      m.Name(),
		Ordinal: m.Ordinal(),
		Total:   m.Total(),
	}, nil
}
