// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"strings"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//Config 节点配置
type Config struct {
	Title      string     `toml:"Title"`
	Log        *Log       `toml:"log"`
	Store      *Store     `toml:"store"`
	LocalStore *Store     `toml:"localStore"`
	Consensus  *Consensus `toml:"consensus"`
	RPC        *RPC       `toml:"rpc"`
	Metrics    *Metrics   `toml:"metrics"`
	Exec       *Exec      `toml:"exec"`
}

//Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

//Store 数据库配置
type Store struct {
	// 数据存储格式名称，支持memdb/leveldb/goleveldb/badger
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

//Consensus 共识配置, 目前只有 solo
type Consensus struct {
	Name string `toml:"name"`
	// 出块间隔, 单位毫秒
	BlockInterval int64           `toml:"blockInterval"`
	Genesis       []*GenesisAlloc `toml:"genesis"`
}

//GenesisAlloc 创世分配
type GenesisAlloc struct {
	Addr   string `toml:"addr"`
	Amount int64  `toml:"amount"`
}

//RPC 配置
type RPC struct {
	JrpcBindAddr   string   `toml:"jrpcBindAddr"`
	Whitelist      []string `toml:"whitelist"`
	MaxConnections int      `toml:"maxConnections"`
	// 每个 ip 每秒的请求数, 0 表示不限制
	RateLimit   float64  `toml:"rateLimit"`
	RateBurst   int64    `toml:"rateBurst"`
	CorsOrigins []string `toml:"corsOrigins"`
}

//Metrics 配置
type Metrics struct {
	EnableMetrics bool `toml:"enableMetrics"`
	// 输出间隔, 单位秒
	Duration int64 `toml:"duration"`
}

//Exec 执行器配置, sub 下是各个 dapp 自己的配置
type Exec struct {
	Sub map[string]map[string]interface{} `toml:"sub"`
}

//InitCfg 从文件读取配置
func InitCfg(path string) (*Config, error) {
	var cfg Config
	md, err := tml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrap(err, "decode config file "+path)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	fillDefault(&cfg)
	return &cfg, nil
}

//InitCfgString 从字符串读取配置
func InitCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	md, err := tml.Decode(cfgstring, &cfg)
	if err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	fillDefault(&cfg)
	return &cfg, nil
}

//MustInitCfgString 用于测试
func MustInitCfgString(cfgstring string) *Config {
	cfg, err := InitCfgString(cfgstring)
	if err != nil {
		panic(err)
	}
	return cfg
}

func checkUndecoded(md tml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return errors.Wrap(ErrConfigUnknownKeys, strings.Join(keys, ","))
}

func fillDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	fillStore(cfg.Store, "datadir/statedb")
	if cfg.LocalStore == nil {
		cfg.LocalStore = &Store{}
	}
	fillStore(cfg.LocalStore, "datadir/localdb")
	if cfg.Consensus == nil {
		cfg.Consensus = &Consensus{}
	}
	if cfg.Consensus.Name == "" {
		cfg.Consensus.Name = "solo"
	}
	if cfg.Consensus.BlockInterval <= 0 {
		cfg.Consensus.BlockInterval = 1000
	}
	if cfg.RPC == nil {
		cfg.RPC = &RPC{}
	}
	if cfg.RPC.JrpcBindAddr == "" {
		cfg.RPC.JrpcBindAddr = "localhost:8801"
	}
	if cfg.RPC.MaxConnections <= 0 {
		cfg.RPC.MaxConnections = 1000
	}
	if len(cfg.RPC.Whitelist) == 0 {
		cfg.RPC.Whitelist = []string{"127.0.0.1"}
	}
	if cfg.RPC.RateLimit > 0 && cfg.RPC.RateBurst <= 0 {
		cfg.RPC.RateBurst = int64(cfg.RPC.RateLimit) + 1
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Metrics.Duration <= 0 {
		cfg.Metrics.Duration = 60
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
	if cfg.Exec.Sub == nil {
		cfg.Exec.Sub = make(map[string]map[string]interface{})
	}
}

func fillStore(s *Store, path string) {
	if s.Driver == "" {
		s.Driver = "leveldb"
	}
	if s.DbPath == "" {
		s.DbPath = path
	}
	if s.DbCache <= 0 {
		s.DbCache = 64
	}
}

//MustDecodeSubConfig 把 dapp 的子配置解码到 sub 中, sub 中已有的值作为默认值
func (c *Config) MustDecodeSubConfig(name string, sub interface{}) {
	if err := c.DecodeSubConfig(name, sub); err != nil {
		panic(err)
	}
}

//DecodeSubConfig 把 dapp 的子配置解码到 sub 中
func (c *Config) DecodeSubConfig(name string, sub interface{}) error {
	if c == nil || c.Exec == nil {
		return nil
	}
	data, ok := c.Exec.Sub[name]
	if !ok {
		return nil
	}
	var buf bytes.Buffer
	if err := tml.NewEncoder(&buf).Encode(data); err != nil {
		return errors.Wrap(err, "encode sub config "+name)
	}
	md, err := tml.Decode(buf.String(), sub)
	if err != nil {
		return errors.Wrap(err, "decode sub config "+name)
	}
	return checkUndecoded(md)
}
