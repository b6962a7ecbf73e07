// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xaddr: 地址模型库，MAC/IPv4/IPv6 的解析、格式化、分类与网络地址计算
//   - xderive: 地址派生，多播 IP 到组播 MAC 的映射与 EUI-64 地址合成
//
// 设计原则：
//   - 地址一律以不可变值类型表示，可直接比较、可作 map key
//   - 解析严格、派生纯函数，错误通过哨兵错误显式返回
//   - 与标准库 net/netip 可互转，便于混合使用
package util
