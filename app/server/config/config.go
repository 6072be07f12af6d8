package config

type Config struct {
	System struct {
		Mode      string `env:"MODE"` // 以 p 开头视为生产环境
		IsProd    bool   // 是否为生产环境，由 Mode 推导
		Listen    string `env:"LISTEN" envDefault:":8080"`    // 监听地址
		ViewsDir  string `env:"VIEWS_DIR" envDefault:"views"` // 模板目录
		PublicDir string `env:"PUBLIC_DIR" envDefault:"public"`
	}
	Postgres struct {
		Host     string `env:"PGHOST,required"`
		Port     uint16 `env:"PGPORT" envDefault:"5432"`
		User     string `env:"PGUSER,required"`
		Password string `env:"PGPASSWORD"`
		Database string `env:"PGDATABASE,required"`
	}
	Mongo struct {
		ConnectionString string `env:"MONGODB,required"` // 用户库连接字符串
	}
	Redis struct {
		ConnectionString string `env:"REDIS_CONN"` // 为空时不启用注销黑名单
	}
	Security struct {
		SessionSecret     string `env:"SESSION_SECRET,required"`      // 会话 JWT 的签名密钥，更新会导致旧有会话失效
		SessionEncryptKey string `env:"SESSION_ENCRYPT_KEY,required"` // 会话 cookie 的加密密钥
	}
}
