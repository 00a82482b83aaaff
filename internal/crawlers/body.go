package crawlers

import (
	"bufio"
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/crozone/ScrapeMonet/internal/utils"
)

// newDecoder 根据Content-Encoding包装reader
// 支持 gzip, deflate, br (Brotli); 未知编码原样返回
// 返回值的Close只关闭解码器本身,不关闭r
func newDecoder(contentEncoding string, r io.Reader) (io.ReadCloser, error) {
	encoding := strings.ToLower(strings.TrimSpace(contentEncoding))

	switch encoding {
	case "", "identity":
		return io.NopCloser(r), nil

	case "gzip", "x-gzip":
		reader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip解压失败: %w", err)
		}
		return reader, nil

	case "deflate":
		// 按规范deflate应带zlib头,但不少服务器直接发送裸deflate流
		br := bufio.NewReader(r)
		if header, err := br.Peek(2); err == nil && isZlibHeader(header) {
			reader, err := zlib.NewReader(br)
			if err != nil {
				return nil, fmt.Errorf("deflate解压失败: %w", err)
			}
			return reader, nil
		}
		return flate.NewReader(br), nil

	case "br":
		return io.NopCloser(brotli.NewReader(r)), nil

	default:
		utils.Warnf("未知的Content-Encoding: %s", contentEncoding)
		return io.NopCloser(r), nil
	}
}

// isZlibHeader 检查RFC 1950头: CM=8 且 (CMF<<8|FLG) 是31的倍数
func isZlibHeader(h []byte) bool {
	return h[0]&0x0f == 8 && (uint16(h[0])<<8|uint16(h[1]))%31 == 0
}

// isGzipEncoding Colly会自动解压gzip响应
func isGzipEncoding(contentEncoding string) bool {
	encoding := strings.ToLower(strings.TrimSpace(contentEncoding))
	return encoding == "gzip" || encoding == "x-gzip"
}

// decompressBytes 解压完整的响应体
func decompressBytes(contentEncoding string, body []byte) ([]byte, error) {
	reader, err := newDecoder(contentEncoding, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("读取解压数据失败 (编码=%s): %w", contentEncoding, err)
	}
	return decompressed, nil
}

// decodedBody 关闭时依次关闭解码器和原始响应体
type decodedBody struct {
	io.Reader
	decoder io.Closer
	body    io.Closer
}

func (b *decodedBody) Close() error {
	decErr := b.decoder.Close()
	if err := b.body.Close(); err != nil {
		return err
	}
	return decErr
}

// decodeBody 返回解压后的响应体流
// 传输层已自动解压(resp.Uncompressed)时直接返回原始响应体
func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	if resp.Uncompressed {
		return resp.Body, nil
	}

	decoder, err := newDecoder(resp.Header.Get("Content-Encoding"), resp.Body)
	if err != nil {
		return nil, err
	}
	return &decodedBody{Reader: decoder, decoder: decoder, body: resp.Body}, nil
}
