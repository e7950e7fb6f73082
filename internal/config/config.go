package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zzzzer91/bytekit/streamio"
)

type Conf struct {
	Copy   Copy     `yaml:"copy"`
	Chunks Chunks   `yaml:"chunks"`
	Relays []*Relay `yaml:"relays"`
}

type Copy struct {
	BufferSize int `yaml:"buffer_size"`
}

type Chunks struct {
	BufferSize int `yaml:"buffer_size"`
}

type Relay struct {
	Name       string `yaml:"name"`
	Listen     string `yaml:"listen"`
	Target     string `yaml:"target"`
	BufferSize int    `yaml:"buffer_size"`
}

const defaultChunkSize = 4 * 1024

func Default() *Conf {
	return &Conf{
		Copy:   Copy{BufferSize: streamio.DefaultBufSize},
		Chunks: Chunks{BufferSize: defaultChunkSize},
	}
}

// LoadConf reads a yaml file on top of Default. Zero sizes keep their
// default value.
func LoadConf(path string) (*Conf, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	conf := Default()
	err = yaml.Unmarshal(b, conf)
	if err != nil {
		return nil, err
	}
	conf.fill()
	return conf, nil
}

func (c *Conf) fill() {
	if c.Copy.BufferSize <= 0 {
		c.Copy.BufferSize = streamio.DefaultBufSize
	}
	if c.Chunks.BufferSize <= 0 {
		c.Chunks.BufferSize = defaultChunkSize
	}
	for _, r := range c.Relays {
		if r.BufferSize <= 0 {
			r.BufferSize = c.Copy.BufferSize
		}
	}
}

func (c *Conf) FindRelay(name string) *Relay {
	for _, r := range c.Relays {
		if r.Name == name {
			return r
		}
	}
	return nil
}
