// Package decryptor реализует формат зашифрованных файлов просмотрщика:
//
//	[16 байт: исходное расширение, ASCII, добито NUL/пробелами][AES-256-CBC шифртекст]
//
// Ключ — первые 32 байта пароля в UTF-8, добитые нулями. IV — 16 нулевых байт.
//
// Формат сохранён ради совместимости с уже зашифрованными файлами и криптографически
// слаб: IV фиксирован, KDF и соли нет, целостность не проверяется. При неверном
// пароле байт длины паддинга иногда случайно оказывается допустимым, и тогда
// Decrypt возвращает мусор без ошибки. WithStrictPadding сокращает такие случаи.
package decryptor
