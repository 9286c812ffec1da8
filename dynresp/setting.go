package dynresp

import (
	"encoding/json"
	"log"

	ms "github.com/mitchellh/mapstructure"

	"github.com/sosl/pycyc"
)

// SimSetting configures the simulated response. Zero decay or curvature
// asks the arc model to resolve a value from the axis geometry.
type SimSetting struct {
	SamplingInterval     float64 // seconds
	NTime                int
	ImpulseResponseDecay float64 // s, 0 = auto
	ArcCurvature         float64 // s^3, 0 = auto
}

func (s *SimSetting) SetDefault() {
	s.SamplingInterval = 15.0
	s.NTime = 256
	s.ImpulseResponseDecay = 0
	s.ArcCurvature = 0
}

func NewSimSetting() *SimSetting {
	result := new(SimSetting)
	result.SetDefault()
	return result
}

func (s *SimSetting) Set(str string) {
	err := json.Unmarshal([]byte(str), s)
	if err != nil {
		log.Print("Error ", err)
	}
}

func (s *SimSetting) FromMap(m pycyc.GenericStruct) {
	err := ms.Decode(m, s)
	if err != nil {
		log.Print("Error ", err)
	}
}
