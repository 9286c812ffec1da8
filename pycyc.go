// Shared observation and result types for the dynamic response simulator
package pycyc

import (
	"encoding/json"
	"log"

	ms "github.com/mitchellh/mapstructure"
	"github.com/wiless/vlib"
)

type GenericStruct map[string]interface{}

// ObsInfo carries the observation metadata consumed by the simulator.
// Frequencies are in MHz, matching the archive header convention.
type ObsInfo struct {
	Source     string
	NChan      int
	NPol       int
	CentreFreq float64
	Bandwidth  float64
}

func (o *ObsInfo) SetDefault() {
	o.Source = "synthetic"
	o.NChan = 128
	o.NPol = 1
	o.CentreFreq = 1400.0
	o.Bandwidth = 128.0
}

func NewObsInfo() *ObsInfo {
	result := new(ObsInfo)
	result.SetDefault()
	return result
}

func (o *ObsInfo) Set(str string) {
	err := json.Unmarshal([]byte(str), o)
	if err != nil {
		log.Print("Error ", err)
	}
}

func (o *ObsInfo) FromMap(m GenericStruct) {
	err := ms.Decode(m, o)
	if err != nil {
		log.Print("Error ", err)
	}
}

// ChanBandwidth is the bandwidth of a single channel
func (o ObsInfo) ChanBandwidth() float64 {
	return o.Bandwidth / float64(o.NChan)
}

// DynamicResponse is the complex time-frequency field handed to persistence.
// Cell (itime, ichan) of Data sits at itime*NChan + ichan.
type DynamicResponse struct {
	MinFreq float64
	MaxFreq float64
	NChan   int
	NTime   int
	NPol    int
	Data    vlib.VectorC
}

// At returns the complex sample at time index itime, channel index ichan
func (d DynamicResponse) At(itime, ichan int) complex128 {
	return d.Data[itime*d.NChan+ichan]
}

// responseOnDisk flattens Data into interleaved re,im pairs, the same
// float layout the response occupies inside an archive extension.
type responseOnDisk struct {
	MinFreq float64
	MaxFreq float64
	NChan   int
	NTime   int
	NPol    int
	Data    vlib.VectorF
}

func (d DynamicResponse) MarshalJSON() ([]byte, error) {
	var out responseOnDisk
	out.MinFreq = d.MinFreq
	out.MaxFreq = d.MaxFreq
	out.NChan = d.NChan
	out.NTime = d.NTime
	out.NPol = d.NPol
	out.Data = vlib.NewVectorF(2 * len(d.Data))
	for i, v := range d.Data {
		out.Data[2*i] = real(v)
		out.Data[2*i+1] = imag(v)
	}
	return json.Marshal(out)
}

func (d *DynamicResponse) UnmarshalJSON(jsondata []byte) error {
	var in responseOnDisk
	err := json.Unmarshal(jsondata, &in)
	if err != nil {
		return err
	}
	d.MinFreq = in.MinFreq
	d.MaxFreq = in.MaxFreq
	d.NChan = in.NChan
	d.NTime = in.NTime
	d.NPol = in.NPol
	d.Data = vlib.NewVectorC(len(in.Data) / 2)
	for i := range d.Data {
		d.Data[i] = complex(in.Data[2*i], in.Data[2*i+1])
	}
	return nil
}

// Save writes the response as formatted JSON
func (d *DynamicResponse) Save(fname string) {
	vlib.SaveStructure(d, fname, true)
}

// LoadDynamicResponse reloads a response written by Save
func LoadDynamicResponse(fname string) *DynamicResponse {
	result := new(DynamicResponse)
	vlib.LoadStructure(fname, result)
	return result
}
