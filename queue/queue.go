// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package queue 模块间的消息队列, 按 topic 订阅
package queue

//消息队列的主要作用是解耦合，让各个模块相对的独立运行。
//订阅者的主要操作:
// sub := q.Sub("topicname", 0)
// for msg := range sub.Recv() {
//     process(msg)
// }

import (
	"sync"
	"sync/atomic"

	"github.com/33cn/rps/types"
	"github.com/google/uuid"
	log "github.com/inconshreveable/log15"
)

var qlog = log.New("module", "queue")

//DefaultChanBuffer 订阅者的默认缓冲
const DefaultChanBuffer = 1024

//Message 消息
type Message struct {
	Topic string
	Ty    int64
	ID    int64
	Data  interface{}
}

//Queue 多对多消息队列
type Queue struct {
	name   string
	mu     sync.RWMutex
	subs   map[string]map[string]*Subscription
	closed bool
	gid    int64
}

//New new
func New(name string) *Queue {
	return &Queue{name: name, subs: make(map[string]map[string]*Subscription)}
}

//Name 队列名称
func (q *Queue) Name() string {
	return q.name
}

//NewMessage 生成带递增 id 的消息
func (q *Queue) NewMessage(topic string, ty int64, data interface{}) Message {
	return Message{Topic: topic, Ty: ty, ID: atomic.AddInt64(&q.gid, 1), Data: data}
}

//Sub 订阅, buffer <= 0 时使用默认缓冲
func (q *Queue) Sub(topic string, buffer int) (*Subscription, error) {
	if buffer <= 0 {
		buffer = DefaultChanBuffer
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil, types.ErrChannelClosed
	}
	sub := &Subscription{
		ID:    uuid.New().String(),
		Topic: topic,
		ch:    make(chan Message, buffer),
		q:     q,
	}
	if q.subs[topic] == nil {
		q.subs[topic] = make(map[string]*Subscription)
	}
	q.subs[topic][sub.ID] = sub
	qlog.Debug("Sub", "topic", topic, "id", sub.ID)
	return sub, nil
}

//Send 发送给 topic 的所有订阅者, 不阻塞; 订阅者缓冲满时丢弃, 返回成功投递的个数
func (q *Queue) Send(msg Message) int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return 0
	}
	n := 0
	for id, sub := range q.subs[msg.Topic] {
		select {
		case sub.ch <- msg:
			n++
		default:
			qlog.Warn("Send drop message", "topic", msg.Topic, "sub", id, "msgid", msg.ID)
		}
	}
	return n
}

//Publish 生成消息并发送
func (q *Queue) Publish(topic string, ty int64, data interface{}) int {
	return q.Send(q.NewMessage(topic, ty, data))
}

func (q *Queue) unsub(sub *Subscription) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if subs, ok := q.subs[sub.Topic]; ok {
		if _, ok := subs[sub.ID]; ok {
			delete(subs, sub.ID)
			close(sub.ch)
		}
	}
}

//Close 关闭队列以及所有订阅
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	for _, subs := range q.subs {
		for _, sub := range subs {
			close(sub.ch)
		}
	}
	q.subs = make(map[string]map[string]*Subscription)
	qlog.Info("queue closed", "name", q.name)
}

//Subscription 一个订阅
type Subscription struct {
	ID    string
	Topic string
	ch    chan Message
	q     *Queue
}

//Recv 接收消息, 订阅或队列关闭后 channel 关闭
func (s *Subscription) Recv() <-chan Message {
	return s.ch
}

//Close 取消订阅
func (s *Subscription) Close() {
	s.q.unsub(s)
}
