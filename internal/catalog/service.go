package catalog

import "fmt"

// Service is a need that cannot be produced directly. Each one is provided
// by exactly one consumable.
type Service int

const (
	Education Service = iota
	Religion
	Treatment
	Luxury
	Leisure
	Brawling

	serviceCount
)

var serviceSymbols = [serviceCount]string{
	Education: "Education",
	Religion:  "Religion",
	Treatment: "Treatment",
	Luxury:    "Luxury",
	Leisure:   "Leisure",
	Brawling:  "Brawling",
}

var serviceNames [serviceCount]string

func init() {
	for s, sym := range serviceSymbols {
		serviceNames[s] = Titleize(sym)
	}
}

func (s Service) String() string {
	if s < 0 || s >= serviceCount {
		return fmt.Sprintf("Service(%d)", int(s))
	}
	return serviceNames[s]
}

// Provider is the consumable that delivers the service.
func (s Service) Provider() Resource {
	switch s {
	case Education:
		return Scrolls
	case Religion:
		return Incense
	case Treatment:
		return Tea
	case Luxury:
		return Wine
	case Leisure:
		return Ale
	case Brawling:
		return TrainingGear
	}
	panic("catalog: provider for unknown service " + s.String())
}

func (s Service) Recipe() Recipe {
	return recipe(slot(s.Provider()))
}

func AllServices() []Service {
	return []Service{Education, Religion, Treatment, Luxury, Leisure, Brawling}
}

func ParseService(value string) (Service, error) {
	want := Pascalize(value)
	for s, sym := range serviceSymbols {
		if sym == want {
			return Service(s), nil
		}
	}
	return 0, invalidValue("service", value, serviceNames[:])
}
