package entities

// City is the one entity with an optional remote backend. CitySource tags a
// response with where the write actually landed.
type City struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

func (c City) EntityID() string { return c.ID }

func (c City) WithEntityID(id string) City {
	c.ID = id
	return c
}

type CitySource string

const (
	CitySourceRemote CitySource = "remote"
	CitySourceLocal  CitySource = "local"
)
