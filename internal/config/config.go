package config

import (
	"github.com/spf13/viper"
)

type AppConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`
}

func InitConfig() *AppConfig {
	v := viper.New()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 3000)
	v.SetDefault("log_level", "info")

	// 端口允许用环境变量覆盖
	v.BindEnv("port", "PORT")

	v.SetConfigFile("app_config")
	v.SetConfigType("json")
	v.AddConfigPath(".")

	// 配置文件缺失时直接使用默认值
	_ = v.ReadInConfig()

	var config AppConfig

	if err := v.Unmarshal(&config); err != nil {
		panic("解析配置失败: " + err.Error())
	}

	return &config
}
