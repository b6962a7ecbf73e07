// Package inventory 将批量地址合成结果组织为 Ansible 清单结构。
//
// 清单按 all.children.remotes.hosts 的层级组织，每条成功记录成为
// 一个 node_{序号} 主机，携带 ansible_host（合成出的 IPv6 地址）与
// original_mac（输入的 MAC 原文）两个变量。序号沿用输入切片中的
// 位置，失败记录被跳过但不重排后续序号，便于与输入逐行对照。
//
// 序列化通过 koanf 的 yaml/json parser 完成，YAML 输出带显式的
// 文档起止标记（"---" 与 "..."）。
package inventory
