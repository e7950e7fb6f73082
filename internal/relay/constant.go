package relay

import "time"

const (
	// client 发送过来的数据一般比较短
	clientBufCapacity = 16 * 1024
	// 下行数据量大，大容量 buffer 有利于减少系统调用
	remoteBufCapacity = 32 * 1024
)

const dialTimeout = 5 * time.Second
