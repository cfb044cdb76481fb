//go:build !mobile

// 桌面端构建时 mobile 包只有这个文件：ebitenmobile 的绑定入口和嵌入资源
// 都带 mobile 构建标签，桌面端的入口在根目录的 main.go。
package mobile
